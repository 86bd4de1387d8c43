// Package mock fabricates a working Telegram.WebApp environment inside
// an embedded JavaScript runtime, for local development and tests. The
// fake host implements the event bus, the buttons and the storage
// surface well enough that SDK code runs against it unmodified, and it
// records every call so tests can assert on host traffic.
package mock

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigFile is the conventional mock config location, read by
// LoadConfig when no explicit path is given.
const DefaultConfigFile = "telegram-webapp.yaml"

// User is the mock Telegram user embedded in generated init data.
type User struct {
	ID              uint64 `koanf:"id" json:"id"`
	FirstName       string `koanf:"first_name" json:"first_name"`
	LastName        string `koanf:"last_name" json:"last_name,omitempty"`
	Username        string `koanf:"username" json:"username,omitempty"`
	LanguageCode    string `koanf:"language_code" json:"language_code,omitempty"`
	IsPremium       bool   `koanf:"is_premium" json:"is_premium,omitempty"`
	AllowsWriteToPM bool   `koanf:"allows_write_to_pm" json:"allows_write_to_pm,omitempty"`
}

// Config describes the mock environment. The zero value yields a usable
// default environment (user "Dev", fake hash, dark theme).
type Config struct {
	User     *User  `koanf:"user"`
	QueryID  string `koanf:"query_id"`
	AuthDate uint64 `koanf:"auth_date"`

	// Hash is embedded verbatim in the generated init data. Leave it
	// empty and set BotToken instead to produce a genuinely signed
	// payload that passes initdata.VerifyHMACSHA256.
	Hash     string `koanf:"hash"`
	BotToken string `koanf:"bot_token"`

	Platform string `koanf:"platform"`
	Version  string `koanf:"version"`

	Theme ThemeConfig `koanf:"theme"`
}

// ThemeConfig overrides individual theme colors; empty roles fall back
// to the defaults the fake host ships with.
type ThemeConfig struct {
	BgColor                string `koanf:"bg_color"`
	TextColor              string `koanf:"text_color"`
	HintColor              string `koanf:"hint_color"`
	LinkColor              string `koanf:"link_color"`
	ButtonColor            string `koanf:"button_color"`
	ButtonTextColor        string `koanf:"button_text_color"`
	SecondaryBgColor       string `koanf:"secondary_bg_color"`
	HeaderBgColor          string `koanf:"header_bg_color"`
	BottomBarBgColor       string `koanf:"bottom_bar_bg_color"`
	AccentTextColor        string `koanf:"accent_text_color"`
	SectionBgColor         string `koanf:"section_bg_color"`
	SectionHeaderTextColor string `koanf:"section_header_text_color"`
	SectionSeparatorColor  string `koanf:"section_separator_color"`
	SubtitleTextColor      string `koanf:"subtitle_text_color"`
	DestructiveTextColor   string `koanf:"destructive_text_color"`
}

// LoadConfig reads a mock configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("mock: load config %s: %w", path, err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("mock: parse config %s: %w", path, err)
	}
	return &cfg, nil
}

var themeDefaults = map[string]string{
	"bg_color":                  "#17212b",
	"text_color":                "#ffffff",
	"hint_color":                "#888888",
	"link_color":                "#2689bf",
	"button_color":              "#0088cc",
	"button_text_color":         "#ffffff",
	"secondary_bg_color":        "#f0f0f0",
	"header_bg_color":           "#1d1f21",
	"bottom_bar_bg_color":       "#1f2226",
	"accent_text_color":         "#2eaee3",
	"section_bg_color":          "#222529",
	"section_header_text_color": "#c8c9cb",
	"section_separator_color":   "#2a2c30",
	"subtitle_text_color":       "#909398",
	"destructive_text_color":    "#e33e3e",
}

func (t ThemeConfig) merged() map[string]string {
	merged := make(map[string]string, len(themeDefaults))
	for k, v := range themeDefaults {
		merged[k] = v
	}
	for k, v := range map[string]string{
		"bg_color":                  t.BgColor,
		"text_color":                t.TextColor,
		"hint_color":                t.HintColor,
		"link_color":                t.LinkColor,
		"button_color":              t.ButtonColor,
		"button_text_color":         t.ButtonTextColor,
		"secondary_bg_color":        t.SecondaryBgColor,
		"header_bg_color":           t.HeaderBgColor,
		"bottom_bar_bg_color":       t.BottomBarBgColor,
		"accent_text_color":         t.AccentTextColor,
		"section_bg_color":          t.SectionBgColor,
		"section_header_text_color": t.SectionHeaderTextColor,
		"section_separator_color":   t.SectionSeparatorColor,
		"subtitle_text_color":       t.SubtitleTextColor,
		"destructive_text_color":    t.DestructiveTextColor,
	} {
		if v != "" {
			merged[k] = v
		}
	}
	return merged
}
