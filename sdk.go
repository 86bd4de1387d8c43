// Package sdk is the entry point for Telegram Mini Apps written in Go.
//
// A program calls Init (or TryInit) once at startup; the SDK resolves the
// Telegram.WebApp host object, captures the launch state into a
// process-wide context, and hands back typed access to it. The captured
// raw init-data string is preserved byte for byte, because the server-side
// signature check is computed over the exact bytes the client received.
package sdk

import (
	"errors"
	"sync"

	"github.com/telegram-webapp/sdk/host"
	"github.com/telegram-webapp/sdk/initdata"
	"github.com/telegram-webapp/sdk/internal/logger"
	"github.com/telegram-webapp/sdk/webapp"
)

var (
	// ErrAlreadyInitialized is returned by Init when the context cell
	// has already been filled.
	ErrAlreadyInitialized = errors.New("sdk: already initialized")

	// ErrNotInitialized is returned when the context is read before a
	// successful Init.
	ErrNotInitialized = errors.New("sdk: not initialized")
)

// Context is the launch state captured at initialization. It is filled
// exactly once per process and never mutated afterwards.
type Context struct {
	// InitData is the parsed form of the launch payload.
	InitData initdata.InitData

	// Theme is the host theme at launch. Later themeChanged events do
	// not update it; subscribe via webapp.OnThemeChanged for that.
	Theme initdata.ThemeParams

	raw string
}

// Raw returns the verbatim init-data string as received from the host.
func (c *Context) Raw() string { return c.raw }

var (
	mu   sync.Mutex
	cell *Context
	app  *webapp.WebApp
)

// Init resolves the Telegram environment, captures the launch context
// and returns the bound WebApp wrapper. It fails with
// host.ErrUnavailable outside Telegram and with ErrAlreadyInitialized on
// a second call.
func Init() (*webapp.WebApp, error) {
	mu.Lock()
	defer mu.Unlock()

	if cell != nil {
		return nil, ErrAlreadyInitialized
	}

	w, err := webapp.Instance()
	if err != nil {
		return nil, err
	}

	raw, err := w.InitDataRaw()
	if err != nil {
		return nil, err
	}

	ctx := &Context{raw: raw}
	if raw != "" {
		data, err := initdata.Parse(raw)
		if err != nil {
			return nil, err
		}
		ctx.InitData = *data
	}
	if theme, err := w.ThemeParams(); err == nil {
		ctx.Theme = theme
	} else {
		logger.Debug("sdk: theme params unavailable", "err", err)
	}

	cell = ctx
	app = w
	logger.Info("sdk: initialized")
	return w, nil
}

// TryInit is Init for code that also runs outside Telegram. It reports
// false without error when no Telegram environment is present, and
// returns an error only for genuine failures such as malformed init
// data.
func TryInit() (*webapp.WebApp, bool, error) {
	w, err := Init()
	if errors.Is(err, host.ErrUnavailable) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return w, true, nil
}

// IsTelegramAvailable reports whether a Telegram.WebApp object tree is
// reachable in the process-default host environment.
func IsTelegramAvailable() bool {
	env, err := host.Default()
	if err != nil {
		return false
	}
	_, err = host.Root(env)
	return err == nil
}

// With runs f with the captured context. The context is shared and
// read-only; f must not retain it past the call for mutation.
func With(f func(*Context)) error {
	mu.Lock()
	c := cell
	mu.Unlock()
	if c == nil {
		return ErrNotInitialized
	}
	f(c)
	return nil
}

// RawInitData returns the verbatim init-data string captured at Init.
func RawInitData() (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if cell == nil {
		return "", ErrNotInitialized
	}
	return cell.raw, nil
}

// App returns the WebApp wrapper bound at Init.
func App() (*webapp.WebApp, error) {
	mu.Lock()
	defer mu.Unlock()
	if app == nil {
		return nil, ErrNotInitialized
	}
	return app, nil
}

// reset clears the context cell. Tests only.
func reset() {
	mu.Lock()
	cell = nil
	app = nil
	mu.Unlock()
}
