package sdk

import (
	"net/url"
	"strings"

	"github.com/telegram-webapp/sdk/host"
)

// LaunchParams are the tgWebApp* query parameters the client appends to
// the Mini App URL.
type LaunchParams struct {
	// Platform identifies the client, e.g. "android", "ios", "web".
	// Defaults to "web" when the parameter is absent.
	Platform string

	// Version is the Bot API version of the client.
	Version string

	// StartParam is the start_param forwarded from the deep link.
	StartParam string

	// ShowSettings requests the settings button at launch.
	ShowSettings bool

	// BotInline reports that the app was launched in inline mode.
	BotInline bool
}

// GetLaunchParams reads the launch parameters from the current location
// of the process-default host environment. Outside a browser it returns
// the zero value with Platform "web".
func GetLaunchParams() LaunchParams {
	params := LaunchParams{Platform: "web"}

	env, err := host.Default()
	if err != nil {
		return params
	}
	location, err := env.Global().Get("location")
	if err != nil || location.IsUndefined() {
		return params
	}
	search, err := location.Get("search")
	if err != nil {
		return params
	}
	s, ok := search.String()
	if !ok {
		return params
	}
	return parseLaunchParams(s)
}

// parseLaunchParams decodes a query string. The client encodes spaces as
// "+", so standard form decoding applies here, unlike init data.
func parseLaunchParams(search string) LaunchParams {
	params := LaunchParams{Platform: "web"}

	search = strings.TrimPrefix(search, "?")
	values, err := url.ParseQuery(search)
	if err != nil {
		return params
	}

	if v := values.Get("tgWebAppPlatform"); v != "" {
		params.Platform = v
	}
	params.Version = values.Get("tgWebAppVersion")
	params.StartParam = values.Get("tgWebAppStartParam")
	params.ShowSettings = values.Get("tgWebAppShowSettings") == "1"
	params.BotInline = values.Get("tgWebAppBotInline") == "1"
	return params
}
