package webapp

import "github.com/telegram-webapp/sdk/host"

// SafeAreaInset is the distance in CSS pixels from each edge of the
// screen that device chrome may cover.
type SafeAreaInset struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

func safeAreaFrom(v host.Value) (SafeAreaInset, bool) {
	var inset SafeAreaInset
	for _, side := range []struct {
		name string
		dst  *float64
	}{
		{"top", &inset.Top},
		{"bottom", &inset.Bottom},
		{"left", &inset.Left},
		{"right", &inset.Right},
	} {
		field, err := v.Get(side.name)
		if err != nil {
			return SafeAreaInset{}, false
		}
		f, ok := field.Float()
		if !ok {
			return SafeAreaInset{}, false
		}
		*side.dst = f
	}
	return inset, true
}

// ViewportHeight reports the currently visible height of the Mini App.
func (w *WebApp) ViewportHeight() (float64, bool) {
	return w.floatProp("viewportHeight")
}

// ViewportStableHeight reports the height the viewport will settle at
// once any ongoing animation finishes.
func (w *WebApp) ViewportStableHeight() (float64, bool) {
	return w.floatProp("viewportStableHeight")
}

// SafeAreaInsets reports the device safe area, if the host exposes it.
func (w *WebApp) SafeAreaInsets() (SafeAreaInset, bool) {
	v, err := w.root.Get("safeAreaInset")
	if err != nil || v.IsUndefined() {
		return SafeAreaInset{}, false
	}
	return safeAreaFrom(v)
}

// ContentSafeAreaInsets reports the area guaranteed free of host UI.
func (w *WebApp) ContentSafeAreaInsets() (SafeAreaInset, bool) {
	v, err := w.root.Get("contentSafeAreaInset")
	if err != nil || v.IsUndefined() {
		return SafeAreaInset{}, false
	}
	return safeAreaFrom(v)
}
