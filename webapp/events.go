package webapp

import "github.com/telegram-webapp/sdk/host"

// Event names delivered through WebApp.onEvent.
const (
	EventThemeChanged           = "themeChanged"
	EventViewportChanged        = "viewportChanged"
	EventSafeAreaChanged        = "safeAreaChanged"
	EventContentSafeAreaChanged = "contentSafeAreaChanged"
	EventMainButtonClicked      = "mainButtonClicked"
	EventBackButtonClicked      = "backButtonClicked"
	EventSettingsButtonClicked  = "settingsButtonClicked"
	EventInvoiceClosed          = "invoiceClosed"
	EventPopupClosed            = "popupClosed"
	EventQRTextReceived         = "qrTextReceived"
	EventClipboardTextReceived  = "clipboardTextReceived"
	EventWriteAccessRequested   = "writeAccessRequested"
	EventContactRequested       = "contactRequested"
	EventPhoneRequested         = "phoneRequested"
)

// EventHandle owns a registered callback together with everything needed
// to unregister it: the host object it was registered on, the name of the
// unregistration method, the event name when the target is an event bus,
// and the host-side function itself.
//
// The handle is the sole unregistration mechanism. Dropping it without
// calling Unregister leaks the callback: the host keeps its reference and
// keeps invoking it.
type EventHandle struct {
	target host.Value
	method string
	event  string
	fn     host.Func
}

// Unregister removes the callback from the host and releases the backing
// closure. The closure is released even when the host call fails, so a
// handle is spent after the first call regardless of outcome. After a
// successful return the host will not invoke the callback again, though
// an invocation already in flight completes normally.
func (h *EventHandle) Unregister() error {
	defer h.fn.Release()
	var err error
	if h.event != "" {
		_, err = h.target.Call(h.method, h.event, h.fn)
	} else {
		_, err = h.target.Call(h.method, h.fn)
	}
	return err
}

// OnEvent registers callback for a named host event and returns the
// handle that unregisters it. The payload is the host value delivered
// with the event, or nil for events without one.
func (w *WebApp) OnEvent(event string, callback func(payload host.Value)) (*EventHandle, error) {
	fn := w.env.NewFunc(func(args []host.Value) {
		if len(args) > 0 {
			callback(args[0])
			return
		}
		callback(nil)
	})
	if _, err := w.root.Call("onEvent", event, fn); err != nil {
		fn.Release()
		return nil, err
	}
	return &EventHandle{target: w.root, method: "offEvent", event: event, fn: fn}, nil
}

// OffEvent unregisters a handle returned by any registration method.
func (w *WebApp) OffEvent(h *EventHandle) error {
	return h.Unregister()
}

func (w *WebApp) onNullaryEvent(event string, callback func()) (*EventHandle, error) {
	return w.OnEvent(event, func(host.Value) { callback() })
}

// OnThemeChanged fires when the host color scheme changes.
func (w *WebApp) OnThemeChanged(callback func()) (*EventHandle, error) {
	return w.onNullaryEvent(EventThemeChanged, callback)
}

// OnViewportChanged fires when the visible viewport changes.
func (w *WebApp) OnViewportChanged(callback func()) (*EventHandle, error) {
	return w.onNullaryEvent(EventViewportChanged, callback)
}

// OnSafeAreaChanged fires when the device safe area changes.
func (w *WebApp) OnSafeAreaChanged(callback func()) (*EventHandle, error) {
	return w.onNullaryEvent(EventSafeAreaChanged, callback)
}

// OnContentSafeAreaChanged fires when the content safe area changes.
func (w *WebApp) OnContentSafeAreaChanged(callback func()) (*EventHandle, error) {
	return w.onNullaryEvent(EventContentSafeAreaChanged, callback)
}

// OnInvoiceClosed fires when an invoice opened through OpenInvoice is
// settled; status is one of "paid", "cancelled", "failed", "pending".
func (w *WebApp) OnInvoiceClosed(callback func(status string)) (*EventHandle, error) {
	return w.OnEvent(EventInvoiceClosed, func(payload host.Value) {
		callback(eventField(payload, "status"))
	})
}

// OnPopupClosed fires when a popup closes; buttonID is empty when the
// popup was dismissed without pressing a button.
func (w *WebApp) OnPopupClosed(callback func(buttonID string)) (*EventHandle, error) {
	return w.OnEvent(EventPopupClosed, func(payload host.Value) {
		callback(eventField(payload, "button_id"))
	})
}

// OnQRTextReceived fires for every code recognized by the QR scanner.
func (w *WebApp) OnQRTextReceived(callback func(text string)) (*EventHandle, error) {
	return w.OnEvent(EventQRTextReceived, func(payload host.Value) {
		callback(eventField(payload, "data"))
	})
}

// OnClipboardTextReceived fires with the text read by
// ReadTextFromClipboard.
func (w *WebApp) OnClipboardTextReceived(callback func(text string)) (*EventHandle, error) {
	return w.OnEvent(EventClipboardTextReceived, func(payload host.Value) {
		callback(eventField(payload, "data"))
	})
}

// OnWriteAccessRequested fires with the outcome of RequestWriteAccess.
func (w *WebApp) OnWriteAccessRequested(callback func(granted bool)) (*EventHandle, error) {
	return w.onOutcomeEvent(EventWriteAccessRequested, callback)
}

// OnContactRequested fires with the outcome of RequestContact.
func (w *WebApp) OnContactRequested(callback func(granted bool)) (*EventHandle, error) {
	return w.onOutcomeEvent(EventContactRequested, callback)
}

// OnPhoneRequested fires with the outcome of a phone number request.
func (w *WebApp) OnPhoneRequested(callback func(granted bool)) (*EventHandle, error) {
	return w.onOutcomeEvent(EventPhoneRequested, callback)
}

func (w *WebApp) onOutcomeEvent(event string, callback func(granted bool)) (*EventHandle, error) {
	return w.OnEvent(event, func(payload host.Value) {
		callback(eventField(payload, "status") == "sent" ||
			eventField(payload, "status") == "allowed")
	})
}

// eventField pulls a string field out of an event payload. Payloads that
// are plain strings rather than objects are returned as-is, since older
// hosts deliver some events both ways.
func eventField(payload host.Value, field string) string {
	if payload == nil {
		return ""
	}
	if s, ok := payload.String(); ok {
		return s
	}
	v, err := payload.Get(field)
	if err != nil {
		return ""
	}
	s, _ := v.String()
	return s
}
