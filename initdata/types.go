// Package initdata parses and validates the launch payload a Telegram
// client injects into a Mini App (`Telegram.WebApp.initData`).
//
// The payload is a URL-encoded query string carrying user and chat context
// plus a signature. Parsing produces the typed records below; validation
// checks the signature against a bot token (HMAC-SHA256) or an Ed25519
// public key. Always validate on the server using the exact raw string the
// client received: URL encoding is not canonical, so a reconstructed
// string may no longer match the signature.
package initdata

// User describes a Telegram user in the context of a Mini App.
type User struct {
	// Unique Telegram user or bot ID.
	ID uint64 `json:"id"`

	// Whether the user is a bot. Only present for the receiver field.
	IsBot *bool `json:"is_bot,omitempty"`

	// First name of the user.
	FirstName string `json:"first_name"`

	// Last name, if set.
	LastName string `json:"last_name,omitempty"`

	// Telegram username, if set.
	Username string `json:"username,omitempty"`

	// IETF language tag, e.g. "en" or "ru".
	LanguageCode string `json:"language_code,omitempty"`

	// Whether the user has Telegram Premium.
	IsPremium *bool `json:"is_premium,omitempty"`

	// True if the user added the bot to the attachment menu.
	AddedToAttachmentMenu *bool `json:"added_to_attachment_menu,omitempty"`

	// True if the user allowed the bot to message them.
	AllowsWriteToPM *bool `json:"allows_write_to_pm,omitempty"`

	// Profile photo URL, if available.
	PhotoURL string `json:"photo_url,omitempty"`
}

// Chat describes the chat a Mini App was launched from (group, supergroup
// or channel).
type Chat struct {
	// Unique chat identifier.
	ID uint64 `json:"id"`

	// Chat type: "group", "supergroup" or "channel".
	Kind string `json:"type"`

	// Chat title.
	Title string `json:"title"`

	// Public username of the chat, if available.
	Username string `json:"username,omitempty"`

	// Chat photo URL, if available.
	PhotoURL string `json:"photo_url,omitempty"`
}

// InitData is the parsed launch payload.
//
// The hash and signature fields authenticate the payload; treat every
// other field as untrusted until one of them has been verified.
type InitData struct {
	// Unique identifier of the Mini App session.
	QueryID string

	// Current user, when launched in a user context.
	User *User

	// Chat partner, when launched from the attachment menu in a
	// private chat.
	Receiver *User

	// Chat the app was launched from.
	Chat *Chat

	// One of "private", "group", "supergroup", "channel", "sender".
	ChatType string

	// Globally unique chat instance identifier.
	ChatInstance string

	// Value of the start parameter from the launch link.
	StartParam string

	// Seconds until answerWebAppQuery may be called, if limited.
	CanSendAfter uint64

	// Unix timestamp of when the payload was produced.
	AuthDate uint64

	// Lowercase hex HMAC-SHA256 over the check string.
	Hash string

	// Base64 Ed25519 signature for third-party validation, if present.
	Signature string
}
