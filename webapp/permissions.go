package webapp

import "github.com/telegram-webapp/sdk/host"

// RequestWriteAccess asks the user to let the bot message them. The
// callback receives the decision; it is kept alive for the rest of the
// process (one-shot host callback).
func (w *WebApp) RequestWriteAccess(callback func(granted bool)) error {
	return w.requestCall("requestWriteAccess", callback)
}

// RequestContact asks the user to share their phone number with the bot.
func (w *WebApp) RequestContact(callback func(granted bool)) error {
	return w.requestCall("requestContact", callback)
}

// RequestPhoneNumber asks the user to share their phone number without
// the full contact card.
func (w *WebApp) RequestPhoneNumber(callback func(shared bool)) error {
	return w.requestCall("requestPhoneNumber", callback)
}

// OpenSettings opens the Mini App settings screen inside the client.
func (w *WebApp) OpenSettings() error {
	return w.call("openSettings")
}

func (w *WebApp) requestCall(method string, callback func(granted bool)) error {
	fn := w.env.NewFunc(func(args []host.Value) {
		granted := false
		if len(args) > 0 {
			granted, _ = args[0].Bool()
		}
		callback(granted)
	})
	if err := w.call(method, fn); err != nil {
		fn.Release()
		return err
	}
	return nil
}

// ShowScanQRPopup opens the QR scanner; recognized codes arrive through
// OnQRTextReceived. text is an optional prompt shown in the popup.
func (w *WebApp) ShowScanQRPopup(text string) error {
	if text == "" {
		return w.call("showScanQrPopup", map[string]any{})
	}
	return w.call("showScanQrPopup", map[string]any{"text": text})
}

// CloseScanQRPopup closes the QR scanner.
func (w *WebApp) CloseScanQRPopup() error {
	return w.call("closeScanQrPopup")
}
