package sdk

import (
	"errors"
	"testing"

	"github.com/telegram-webapp/sdk/host"
	"github.com/telegram-webapp/sdk/mock"
)

func installMock(t *testing.T, cfg *mock.Config) *mock.Env {
	t.Helper()
	env, err := mock.Install(cfg)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	t.Cleanup(func() {
		host.SetDefault(nil)
		reset()
	})
	return env
}

func TestInitCapturesContext(t *testing.T) {
	installMock(t, &mock.Config{
		User:     &mock.User{ID: 42, FirstName: "A"},
		AuthDate: 1700000000,
		QueryID:  "q",
		Hash:     "h",
	})

	w, err := Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if w == nil {
		t.Fatal("Init returned nil WebApp")
	}

	raw, err := RawInitData()
	if err != nil {
		t.Fatalf("RawInitData: %v", err)
	}

	var got *Context
	if err := With(func(c *Context) { got = c }); err != nil {
		t.Fatalf("With: %v", err)
	}
	if got.Raw() != raw {
		t.Fatalf("Context.Raw() = %q, want %q", got.Raw(), raw)
	}
	if got.InitData.User == nil || got.InitData.User.ID != 42 {
		t.Fatalf("InitData.User = %+v, want ID 42", got.InitData.User)
	}
	if got.InitData.AuthDate != 1700000000 {
		t.Fatalf("AuthDate = %d", got.InitData.AuthDate)
	}
	if got.Theme.BgColor == "" {
		t.Fatal("theme not captured")
	}
}

func TestRawPreservedVerbatim(t *testing.T) {
	env := installMock(t, nil)

	// Whatever the host reports must come back byte for byte, however
	// it is encoded.
	const odd = "user=%7B%22id%22%3A1%7D&auth_date=1&hash=zz&weird=%2520"
	if _, err := env.RunString("Telegram.WebApp.initData = " + "'" + odd + "'"); err != nil {
		t.Fatalf("set initData: %v", err)
	}

	if _, err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	raw, err := RawInitData()
	if err != nil {
		t.Fatalf("RawInitData: %v", err)
	}
	if raw != odd {
		t.Fatalf("raw = %q, want %q", raw, odd)
	}
}

func TestInitTwice(t *testing.T) {
	installMock(t, nil)

	if _, err := Init(); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if _, err := Init(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Init err = %v, want ErrAlreadyInitialized", err)
	}
}

func TestReadBeforeInit(t *testing.T) {
	host.SetDefault(nil)
	reset()

	if _, err := RawInitData(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("RawInitData err = %v, want ErrNotInitialized", err)
	}
	if err := With(func(*Context) {}); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("With err = %v, want ErrNotInitialized", err)
	}
	if _, err := App(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("App err = %v, want ErrNotInitialized", err)
	}
}

func TestTryInitOutsideTelegram(t *testing.T) {
	host.SetDefault(nil)
	reset()

	w, ok, err := TryInit()
	if err != nil {
		t.Fatalf("TryInit: %v", err)
	}
	if ok || w != nil {
		t.Fatalf("TryInit = %v, %v; want nil, false", w, ok)
	}
}

func TestTryInitInsideTelegram(t *testing.T) {
	installMock(t, nil)

	w, ok, err := TryInit()
	if err != nil {
		t.Fatalf("TryInit: %v", err)
	}
	if !ok || w == nil {
		t.Fatal("TryInit did not detect the environment")
	}
}

func TestIsTelegramAvailable(t *testing.T) {
	host.SetDefault(nil)
	if IsTelegramAvailable() {
		t.Fatal("available without an environment")
	}

	installMock(t, nil)
	if !IsTelegramAvailable() {
		t.Fatal("not available with a mock environment installed")
	}
}

func TestParseLaunchParams(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   LaunchParams
	}{
		{
			name:   "empty",
			search: "",
			want:   LaunchParams{Platform: "web"},
		},
		{
			name:   "full",
			search: "?tgWebAppPlatform=android&tgWebAppVersion=7.10&tgWebAppStartParam=ref_1&tgWebAppShowSettings=1&tgWebAppBotInline=1",
			want: LaunchParams{
				Platform:     "android",
				Version:      "7.10",
				StartParam:   "ref_1",
				ShowSettings: true,
				BotInline:    true,
			},
		},
		{
			name:   "plus decodes to space",
			search: "?tgWebAppStartParam=a+b",
			want:   LaunchParams{Platform: "web", StartParam: "a b"},
		},
		{
			name:   "malformed query",
			search: "?tgWebAppStartParam=%zz",
			want:   LaunchParams{Platform: "web"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLaunchParams(tt.search); got != tt.want {
				t.Fatalf("parseLaunchParams(%q) = %+v, want %+v", tt.search, got, tt.want)
			}
		})
	}
}

func TestGetLaunchParamsFromLocation(t *testing.T) {
	env := installMock(t, nil)
	if _, err := env.RunString("location.search = '?tgWebAppPlatform=ios&tgWebAppVersion=8.0'"); err != nil {
		t.Fatalf("set search: %v", err)
	}

	got := GetLaunchParams()
	if got.Platform != "ios" || got.Version != "8.0" {
		t.Fatalf("GetLaunchParams() = %+v", got)
	}
}
