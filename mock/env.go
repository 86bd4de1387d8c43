package mock

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/telegram-webapp/sdk/host"
	"github.com/telegram-webapp/sdk/host/gojahost"
	"github.com/telegram-webapp/sdk/internal/logger"
)

// Env is a fake browser plus Telegram.WebApp, backed by gojahost. Beyond
// the host contract it offers test levers: event emission, button
// clicks, and the recorded call log.
type Env struct {
	*gojahost.Env
}

// NewEnv builds a mock environment from cfg. A nil cfg uses defaults:
// user "Dev" (id 1), a generated query_id, the current time as
// auth_date, hash "fakehash" unless a bot token is configured, platform
// "web", version "9.0".
func NewEnv(cfg *Config) (*Env, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	user := cfg.User
	if user == nil {
		user = &User{ID: 1, FirstName: "Dev"}
	}
	authDate := cfg.AuthDate
	if authDate == 0 {
		authDate = uint64(time.Now().Unix())
	}
	queryID := cfg.QueryID
	if queryID == "" {
		queryID = "mock:" + uuid.NewString()
	}

	var initData string
	switch {
	case cfg.BotToken != "":
		initData = SignInitData(user, authDate, queryID, cfg.BotToken)
	case cfg.Hash != "":
		initData = GenerateInitData(user, authDate, queryID, cfg.Hash)
	default:
		initData = GenerateInitData(user, authDate, queryID, "fakehash")
	}

	platform := cfg.Platform
	if platform == "" {
		platform = "web"
	}
	version := cfg.Version
	if version == "" {
		version = "9.0"
	}

	theme, err := json.Marshal(cfg.Theme.merged())
	if err != nil {
		return nil, fmt.Errorf("mock: encode theme: %w", err)
	}

	env := &Env{Env: gojahost.New()}
	script := fmt.Sprintf(bootstrap,
		strconv.Quote(initData),
		theme,
		strconv.Quote(platform),
		strconv.Quote(version),
	)
	if _, err := env.RunString(script); err != nil {
		return nil, fmt.Errorf("mock: bootstrap: %w", err)
	}

	logger.Debug("mock: Telegram.WebApp environment ready",
		"platform", platform, "version", version)
	return env, nil
}

// Install builds a mock environment and makes it the process-default
// host environment, so Instance-style entry points resolve against it.
func Install(cfg *Config) (*Env, error) {
	env, err := NewEnv(cfg)
	if err != nil {
		return nil, err
	}
	host.SetDefault(env)
	return env, nil
}

// Emit fires a host event to every handler registered via onEvent.
// payload may be any value convertible by the runtime (string, bool,
// number, map).
func (e *Env) Emit(event string, payload any) error {
	root, err := host.Root(e)
	if err != nil {
		return err
	}
	_, err = root.Call("emitEvent", event, payload)
	return err
}

// Click presses a button sub-object by host name, e.g. "MainButton" or
// "BackButton".
func (e *Env) Click(button string) error {
	root, err := host.Root(e)
	if err != nil {
		return err
	}
	btn, err := root.Get(button)
	if err != nil {
		return err
	}
	_, err = btn.Call("click")
	return err
}

// HandlerCount reports how many onEvent handlers are live for event,
// for leak assertions in tests.
func (e *Env) HandlerCount(event string) (int, error) {
	root, err := host.Root(e)
	if err != nil {
		return 0, err
	}
	res, err := root.Call("handlerCount", event)
	if err != nil {
		return 0, err
	}
	n, _ := res.Float()
	return int(n), nil
}

// Calls returns the dotted paths of every recorded host call, in order.
func (e *Env) Calls() ([]string, error) {
	v, err := e.RunString("Telegram.WebApp.__calls.join('\\n')")
	if err != nil {
		return nil, err
	}
	joined, ok := v.String()
	if !ok || joined == "" {
		return nil, nil
	}
	return strings.Split(joined, "\n"), nil
}
