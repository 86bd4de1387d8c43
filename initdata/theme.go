package initdata

// ThemeParams carries the color scheme of the embedding Telegram client.
// Every value is a "#RRGGBB" string and every role is optional.
type ThemeParams struct {
	BgColor                string `json:"bg_color,omitempty"`
	TextColor              string `json:"text_color,omitempty"`
	HintColor              string `json:"hint_color,omitempty"`
	LinkColor              string `json:"link_color,omitempty"`
	ButtonColor            string `json:"button_color,omitempty"`
	ButtonTextColor        string `json:"button_text_color,omitempty"`
	SecondaryBgColor       string `json:"secondary_bg_color,omitempty"`
	HeaderBgColor          string `json:"header_bg_color,omitempty"`
	BottomBarBgColor       string `json:"bottom_bar_bg_color,omitempty"`
	AccentTextColor        string `json:"accent_text_color,omitempty"`
	SectionBgColor         string `json:"section_bg_color,omitempty"`
	SectionHeaderTextColor string `json:"section_header_text_color,omitempty"`
	SectionSeparatorColor  string `json:"section_separator_color,omitempty"`
	SubtitleTextColor      string `json:"subtitle_text_color,omitempty"`
	DestructiveTextColor   string `json:"destructive_text_color,omitempty"`
}
