// Package webapp is the typed wrapper over the Telegram.WebApp host
// object. Every method is a thin layer over the host package's binding
// primitive; host failures surface with the dotted path of the member
// that failed.
package webapp

import (
	"errors"

	"github.com/telegram-webapp/sdk/host"
	"github.com/telegram-webapp/sdk/initdata"
)

var (
	errNotAString = errors.New("not a string")
	errUndefined  = errors.New("undefined")
)

// WebApp wraps the Telegram.WebApp host object.
type WebApp struct {
	env  host.Env
	root host.Value
}

// Instance resolves Telegram.WebApp in the process-default host
// environment. It returns host.ErrUnavailable outside a Telegram
// environment.
func Instance() (*WebApp, error) {
	env, err := host.Default()
	if err != nil {
		return nil, err
	}
	return FromEnv(env)
}

// FromEnv resolves Telegram.WebApp in env. Tests and the mock package
// use this to bind against an embedded environment.
func FromEnv(env host.Env) (*WebApp, error) {
	root, err := host.Root(env)
	if err != nil {
		return nil, err
	}
	return &WebApp{env: env, root: root}, nil
}

// ValidateInitData checks the authenticity of a raw init-data payload.
// It forwards to initdata.Validate; see that package for the contract.
func ValidateInitData(raw string, key initdata.Key) error {
	return initdata.Validate(raw, key)
}

// InitDataRaw returns the verbatim WebApp.initData string.
func (w *WebApp) InitDataRaw() (string, error) {
	v, err := w.root.Get("initData")
	if err != nil {
		return "", err
	}
	s, ok := v.String()
	if !ok {
		return "", &host.CallError{Path: "initData", Err: errNotAString}
	}
	return s, nil
}

// Version reports the WebApp.version property.
func (w *WebApp) Version() (string, bool) {
	return w.stringProp("version")
}

// Platform reports the WebApp.platform property.
func (w *WebApp) Platform() (string, bool) {
	return w.stringProp("platform")
}

// IsVersionAtLeast reports whether the host version is at least v. This
// is the sanctioned guard before calling methods absent in older hosts.
func (w *WebApp) IsVersionAtLeast(v string) (bool, error) {
	res, err := w.root.Call("isVersionAtLeast", v)
	if err != nil {
		return false, err
	}
	b, _ := res.Bool()
	return b, nil
}

// Ready tells the host the Mini App has rendered and may be shown.
func (w *WebApp) Ready() error {
	return w.call("ready")
}

// Close closes the Mini App.
func (w *WebApp) Close() error {
	return w.call("close")
}

// SendData relays data to the bot via the host. Only available for apps
// launched from a keyboard button.
func (w *WebApp) SendData(data string) error {
	return w.call("sendData", data)
}

// Internal binding helpers. Everything in this package funnels host
// access through these so failure paths stay uniform.

func (w *WebApp) call(method string, args ...any) error {
	_, err := w.root.Call(method, args...)
	return err
}

func (w *WebApp) callNested(field, method string, args ...any) error {
	obj, err := w.root.Get(field)
	if err != nil {
		return err
	}
	_, err = obj.Call(method, args...)
	return err
}

func (w *WebApp) stringProp(name string) (string, bool) {
	v, err := w.root.Get(name)
	if err != nil {
		return "", false
	}
	return v.String()
}

func (w *WebApp) boolProp(name string) (bool, bool) {
	v, err := w.root.Get(name)
	if err != nil {
		return false, false
	}
	return v.Bool()
}

func (w *WebApp) floatProp(name string) (float64, bool) {
	v, err := w.root.Get(name)
	if err != nil {
		return 0, false
	}
	return v.Float()
}
