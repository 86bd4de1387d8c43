package webapp

import (
	"encoding/json"

	"github.com/telegram-webapp/sdk/host"
	"github.com/telegram-webapp/sdk/initdata"
)

// ThemeParams reads the current WebApp.themeParams object. The host
// object is serialized through the environment's own JSON and decoded
// into the typed record, so unknown roles are ignored and absent roles
// stay empty.
func (w *WebApp) ThemeParams() (initdata.ThemeParams, error) {
	var theme initdata.ThemeParams

	obj, err := w.root.Get("themeParams")
	if err != nil {
		return theme, err
	}
	if obj.IsUndefined() {
		return theme, &host.CallError{Path: "themeParams", Err: errUndefined}
	}

	jsonObj, err := w.env.Global().Get("JSON")
	if err != nil {
		return theme, err
	}
	res, err := jsonObj.Call("stringify", obj)
	if err != nil {
		return theme, err
	}
	s, ok := res.String()
	if !ok {
		return theme, &host.CallError{Path: "themeParams", Err: errNotAString}
	}
	if err := json.Unmarshal([]byte(s), &theme); err != nil {
		return theme, &host.CallError{Path: "themeParams", Err: err}
	}
	return theme, nil
}

// ColorScheme reports "light" or "dark".
func (w *WebApp) ColorScheme() (string, bool) {
	return w.stringProp("colorScheme")
}

// SetHeaderColor sets the header color to a "#RRGGBB" value or one of
// the host's named keys ("bg_color", "secondary_bg_color").
func (w *WebApp) SetHeaderColor(color string) error {
	return w.call("setHeaderColor", color)
}

// SetBackgroundColor sets the page background color.
func (w *WebApp) SetBackgroundColor(color string) error {
	return w.call("setBackgroundColor", color)
}

// SetBottomBarColor sets the bottom bar color.
func (w *WebApp) SetBottomBarColor(color string) error {
	return w.call("setBottomBarColor", color)
}
