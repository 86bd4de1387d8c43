package webapp

import "github.com/telegram-webapp/sdk/host"

// BottomButton identifies one of the host-rendered buttons anchored to
// the bottom of the Mini App viewport.
type BottomButton int

const (
	// Main is the primary bottom button.
	Main BottomButton = iota
	// Secondary is the optional second bottom button.
	Secondary
)

func (b BottomButton) objectName() string {
	if b == Secondary {
		return "SecondaryButton"
	}
	return "MainButton"
}

// SecondaryButtonPosition places the secondary button relative to the
// main one.
type SecondaryButtonPosition string

const (
	PositionTop    SecondaryButtonPosition = "top"
	PositionLeft   SecondaryButtonPosition = "left"
	PositionBottom SecondaryButtonPosition = "bottom"
	PositionRight  SecondaryButtonPosition = "right"
)

// BottomButtonParams updates button state in bulk via setParams. Nil
// fields leave the corresponding host state untouched.
type BottomButtonParams struct {
	Text           *string
	Color          *string
	TextColor      *string
	IsActive       *bool
	IsVisible      *bool
	HasShineEffect *bool
}

func (p *BottomButtonParams) toMap() map[string]any {
	m := map[string]any{}
	if p == nil {
		return m
	}
	if p.Text != nil {
		m["text"] = *p.Text
	}
	if p.Color != nil {
		m["color"] = *p.Color
	}
	if p.TextColor != nil {
		m["text_color"] = *p.TextColor
	}
	if p.IsActive != nil {
		m["is_active"] = *p.IsActive
	}
	if p.IsVisible != nil {
		m["is_visible"] = *p.IsVisible
	}
	if p.HasShineEffect != nil {
		m["has_shine_effect"] = *p.HasShineEffect
	}
	return m
}

// SecondaryButtonParams extends the common params with the position only
// the secondary button supports.
type SecondaryButtonParams struct {
	BottomButtonParams
	Position *SecondaryButtonPosition
}

func (w *WebApp) bottomButton(button BottomButton) (host.Value, error) {
	return w.root.Get(button.objectName())
}

// ShowBottomButton makes the button visible.
func (w *WebApp) ShowBottomButton(button BottomButton) error {
	return w.callNested(button.objectName(), "show")
}

// HideBottomButton hides the button.
func (w *WebApp) HideBottomButton(button BottomButton) error {
	return w.callNested(button.objectName(), "hide")
}

// EnableBottomButton makes the button respond to clicks.
func (w *WebApp) EnableBottomButton(button BottomButton) error {
	return w.callNested(button.objectName(), "enable")
}

// DisableBottomButton makes the button inert.
func (w *WebApp) DisableBottomButton(button BottomButton) error {
	return w.callNested(button.objectName(), "disable")
}

// SetBottomButtonText sets the button label.
func (w *WebApp) SetBottomButtonText(button BottomButton, text string) error {
	return w.callNested(button.objectName(), "setText", text)
}

// SetBottomButtonColor sets the button background color ("#RRGGBB").
func (w *WebApp) SetBottomButtonColor(button BottomButton, color string) error {
	return w.callNested(button.objectName(), "setColor", color)
}

// SetBottomButtonTextColor sets the button label color ("#RRGGBB").
func (w *WebApp) SetBottomButtonTextColor(button BottomButton, color string) error {
	return w.callNested(button.objectName(), "setTextColor", color)
}

// ShowBottomButtonProgress replaces the label with a spinner. With
// leaveActive the button keeps accepting clicks while spinning.
func (w *WebApp) ShowBottomButtonProgress(button BottomButton, leaveActive bool) error {
	return w.callNested(button.objectName(), "showProgress", leaveActive)
}

// HideBottomButtonProgress restores the label.
func (w *WebApp) HideBottomButtonProgress(button BottomButton) error {
	return w.callNested(button.objectName(), "hideProgress")
}

// SetBottomButtonParams applies a bulk state update.
func (w *WebApp) SetBottomButtonParams(button BottomButton, params *BottomButtonParams) error {
	return w.callNested(button.objectName(), "setParams", params.toMap())
}

// SetSecondaryButtonParams applies a bulk state update to the secondary
// button, including its position.
func (w *WebApp) SetSecondaryButtonParams(params *SecondaryButtonParams) error {
	m := map[string]any{}
	if params != nil {
		m = params.toMap()
		if params.Position != nil {
			m["position"] = string(*params.Position)
		}
	}
	return w.callNested(Secondary.objectName(), "setParams", m)
}

// IsBottomButtonVisible reports the button's isVisible property.
func (w *WebApp) IsBottomButtonVisible(button BottomButton) bool {
	return w.buttonBoolProp(button, "isVisible")
}

// IsBottomButtonActive reports the button's isActive property.
func (w *WebApp) IsBottomButtonActive(button BottomButton) bool {
	return w.buttonBoolProp(button, "isActive")
}

// IsBottomButtonProgressVisible reports whether the spinner is showing.
func (w *WebApp) IsBottomButtonProgressVisible(button BottomButton) bool {
	return w.buttonBoolProp(button, "isProgressVisible")
}

// BottomButtonText reports the button's current label.
func (w *WebApp) BottomButtonText(button BottomButton) (string, bool) {
	btn, err := w.bottomButton(button)
	if err != nil {
		return "", false
	}
	v, err := btn.Get("text")
	if err != nil {
		return "", false
	}
	return v.String()
}

// SecondaryButtonPos reports where the secondary button is rendered.
func (w *WebApp) SecondaryButtonPos() (SecondaryButtonPosition, bool) {
	btn, err := w.bottomButton(Secondary)
	if err != nil {
		return "", false
	}
	v, err := btn.Get("position")
	if err != nil {
		return "", false
	}
	s, ok := v.String()
	if !ok {
		return "", false
	}
	switch p := SecondaryButtonPosition(s); p {
	case PositionTop, PositionLeft, PositionBottom, PositionRight:
		return p, true
	}
	return "", false
}

func (w *WebApp) buttonBoolProp(button BottomButton, name string) bool {
	btn, err := w.bottomButton(button)
	if err != nil {
		return false
	}
	v, err := btn.Get(name)
	if err != nil {
		return false
	}
	b, _ := v.Bool()
	return b
}

// OnBottomButtonClick registers a click callback on a bottom button. At
// most one callback should be live per button; register a replacement
// only after unregistering the previous handle via
// RemoveBottomButtonCallback, otherwise the host keeps invoking both.
func (w *WebApp) OnBottomButtonClick(button BottomButton, callback func()) (*EventHandle, error) {
	btn, err := w.bottomButton(button)
	if err != nil {
		return nil, err
	}
	return w.onClick(btn, callback)
}

// RemoveBottomButtonCallback unregisters a click callback. This is the
// sole sanctioned removal path.
func (w *WebApp) RemoveBottomButtonCallback(h *EventHandle) error {
	return h.Unregister()
}

// ShowBackButton makes the host back button visible.
func (w *WebApp) ShowBackButton() error {
	return w.callNested("BackButton", "show")
}

// HideBackButton hides the host back button.
func (w *WebApp) HideBackButton() error {
	return w.callNested("BackButton", "hide")
}

// OnBackButtonClick registers a callback for the host back button.
func (w *WebApp) OnBackButtonClick(callback func()) (*EventHandle, error) {
	btn, err := w.root.Get("BackButton")
	if err != nil {
		return nil, err
	}
	return w.onClick(btn, callback)
}

// ShowSettingsButton makes the settings item in the context menu visible.
func (w *WebApp) ShowSettingsButton() error {
	return w.callNested("SettingsButton", "show")
}

// HideSettingsButton hides the settings item.
func (w *WebApp) HideSettingsButton() error {
	return w.callNested("SettingsButton", "hide")
}

// OnSettingsButtonClick registers a callback for the settings item.
func (w *WebApp) OnSettingsButtonClick(callback func()) (*EventHandle, error) {
	btn, err := w.root.Get("SettingsButton")
	if err != nil {
		return nil, err
	}
	return w.onClick(btn, callback)
}

// onClick wires a nullary callback through a button's onClick/offClick
// pair and hands ownership to the returned handle.
func (w *WebApp) onClick(target host.Value, callback func()) (*EventHandle, error) {
	fn := w.env.NewFunc(func([]host.Value) { callback() })
	if _, err := target.Call("onClick", fn); err != nil {
		fn.Release()
		return nil, err
	}
	return &EventHandle{target: target, method: "offClick", fn: fn}, nil
}
