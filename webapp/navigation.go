package webapp

import (
	"net/url"

	"github.com/telegram-webapp/sdk/host"
)

// OpenLinkOptions tunes OpenLink behavior.
type OpenLinkOptions struct {
	// TryInstantView opens the page in Telegram's Instant View when
	// available.
	TryInstantView bool
}

// OpenLink opens an external URL in the device browser.
func (w *WebApp) OpenLink(link string, options *OpenLinkOptions) error {
	if options == nil {
		return w.call("openLink", link)
	}
	return w.call("openLink", link, map[string]any{
		"try_instant_view": options.TryInstantView,
	})
}

// OpenTelegramLink opens a t.me link inside Telegram without leaving
// the app.
func (w *WebApp) OpenTelegramLink(link string) error {
	return w.call("openTelegramLink", link)
}

// OpenInvoice opens a Telegram invoice. The callback receives the final
// status ("paid", "cancelled", "failed", "pending") when the invoice
// closes; like all one-shot host callbacks it is kept alive for the rest
// of the process because the host never reports releasing it.
func (w *WebApp) OpenInvoice(url string, callback func(status string)) error {
	fn := w.env.NewFunc(func(args []host.Value) {
		status := ""
		if len(args) > 0 {
			status, _ = args[0].String()
		}
		callback(status)
	})
	if err := w.call("openInvoice", url, fn); err != nil {
		fn.Release()
		return err
	}
	return nil
}

// ShareURL opens the native share sheet with a URL and optional text.
func (w *WebApp) ShareURL(target, text string) error {
	link := "https://t.me/share/url?url=" + url.QueryEscape(target)
	if text != "" {
		link += "&text=" + url.QueryEscape(text)
	}
	return w.call("openTelegramLink", link)
}

// StoryShareParams carries the optional parts of ShareToStory.
type StoryShareParams struct {
	// Text is the caption placed over the media.
	Text string
	// WidgetLinkURL and WidgetLinkName attach a link widget; the name
	// is only honored for premium users.
	WidgetLinkURL  string
	WidgetLinkName string
}

// ShareToStory posts media to the user's Telegram story.
func (w *WebApp) ShareToStory(mediaURL string, params *StoryShareParams) error {
	if params == nil {
		return w.call("shareToStory", mediaURL)
	}
	m := map[string]any{}
	if params.Text != "" {
		m["text"] = params.Text
	}
	if params.WidgetLinkURL != "" {
		widget := map[string]any{"url": params.WidgetLinkURL}
		if params.WidgetLinkName != "" {
			widget["name"] = params.WidgetLinkName
		}
		m["widget_link"] = widget
	}
	return w.call("shareToStory", mediaURL, m)
}

// SwitchInlineQuery inserts the bot username and query into the chat
// input. chatTypes restricts where the user may pick the chat; allowed
// values are "users", "bots", "groups", "channels".
func (w *WebApp) SwitchInlineQuery(query string, chatTypes []string) error {
	if len(chatTypes) == 0 {
		return w.call("switchInlineQuery", query)
	}
	types := make([]any, len(chatTypes))
	for i, t := range chatTypes {
		types[i] = t
	}
	return w.call("switchInlineQuery", query, types)
}

// ReadTextFromClipboard asks the host for clipboard text; the result
// arrives at the callback. Only usable for apps launched from the
// attachment menu.
func (w *WebApp) ReadTextFromClipboard(callback func(text string)) error {
	fn := w.env.NewFunc(func(args []host.Value) {
		text := ""
		if len(args) > 0 {
			text, _ = args[0].String()
		}
		callback(text)
	})
	if err := w.call("readTextFromClipboard", fn); err != nil {
		fn.Release()
		return err
	}
	return nil
}
