package webapp

import "github.com/telegram-webapp/sdk/host"

// IsActive reports whether the Mini App is currently active.
func (w *WebApp) IsActive() bool {
	b, _ := w.boolProp("isActive")
	return b
}

// IsExpanded reports whether the viewport is expanded to full height.
func (w *WebApp) IsExpanded() bool {
	b, _ := w.boolProp("isExpanded")
	return b
}

// Expand expands the Mini App to the maximum available height.
func (w *WebApp) Expand() error {
	return w.call("expand")
}

// EnableClosingConfirmation asks the host to confirm before closing.
func (w *WebApp) EnableClosingConfirmation() error {
	return w.call("enableClosingConfirmation")
}

// DisableClosingConfirmation removes the closing confirmation.
func (w *WebApp) DisableClosingConfirmation() error {
	return w.call("disableClosingConfirmation")
}

// IsClosingConfirmationEnabled reports the current confirmation setting.
func (w *WebApp) IsClosingConfirmationEnabled() bool {
	b, _ := w.boolProp("isClosingConfirmationEnabled")
	return b
}

// EnableVerticalSwipes re-enables the host's swipe-to-close gesture.
func (w *WebApp) EnableVerticalSwipes() error {
	return w.call("enableVerticalSwipes")
}

// DisableVerticalSwipes disables the swipe-to-close gesture so the app
// can own vertical gestures.
func (w *WebApp) DisableVerticalSwipes() error {
	return w.call("disableVerticalSwipes")
}

// IsVerticalSwipesEnabled reports the current gesture setting.
func (w *WebApp) IsVerticalSwipesEnabled() bool {
	b, _ := w.boolProp("isVerticalSwipesEnabled")
	return b
}

// IsFullscreen reports whether the app is in fullscreen mode.
func (w *WebApp) IsFullscreen() bool {
	b, _ := w.boolProp("isFullscreen")
	return b
}

// RequestFullscreen asks the host for fullscreen mode.
func (w *WebApp) RequestFullscreen() error {
	return w.call("requestFullscreen")
}

// ExitFullscreen leaves fullscreen mode.
func (w *WebApp) ExitFullscreen() error {
	return w.call("exitFullscreen")
}

// LockOrientation locks the screen to orientation ("portrait" or
// "landscape").
func (w *WebApp) LockOrientation(orientation string) error {
	return w.call("lockOrientation", orientation)
}

// UnlockOrientation releases an orientation lock.
func (w *WebApp) UnlockOrientation() error {
	return w.call("unlockOrientation")
}

// IsOrientationLocked reports whether an orientation lock is active.
func (w *WebApp) IsOrientationLocked() bool {
	b, _ := w.boolProp("isOrientationLocked")
	return b
}

// AddToHomeScreen prompts the user to add the Mini App to the device
// home screen.
func (w *WebApp) AddToHomeScreen() error {
	return w.call("addToHomeScreen")
}

// CheckHomeScreenStatus asks the host whether a home-screen shortcut
// exists; status is one of "unsupported", "unknown", "added", "missed".
//
// The callback is one-shot from the host's perspective but the SDK
// cannot learn when the host drops its reference, so the closure is
// intentionally kept alive for the rest of the process.
func (w *WebApp) CheckHomeScreenStatus(callback func(status string)) error {
	fn := w.env.NewFunc(func(args []host.Value) {
		status := ""
		if len(args) > 0 {
			status, _ = args[0].String()
		}
		callback(status)
	})
	if err := w.call("checkHomeScreenStatus", fn); err != nil {
		fn.Release()
		return err
	}
	return nil
}
