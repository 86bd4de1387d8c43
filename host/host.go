// Package host is the single place the SDK touches the dynamically-shaped
// object tree the Telegram client exposes at globalThis.Telegram.WebApp.
//
// Every other package works against the small contract below; typing lives
// at the SDK boundary and reflection lives here. Two backends implement
// the contract: jshost binds to the real browser under js/wasm, and
// gojahost runs an embedded JavaScript engine for tests and the mock
// environment.
package host

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when no host environment is present or the
// Telegram.WebApp object tree cannot be resolved.
var ErrUnavailable = errors.New("host: Telegram.WebApp unavailable")

// CallError reports a failed host access: a missing member, a member that
// is not callable, or an error thrown by the host. Path is dotted from
// the object the access started at, e.g. "MainButton.setText".
type CallError struct {
	Path string
	Err  error
}

func (e *CallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("host: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("host: %s failed", e.Path)
}

func (e *CallError) Unwrap() error { return e.Err }

// Value is a dynamically typed value held by the host.
//
// Accessors that descend into the tree return a *CallError on any step;
// the error is never papered over because callers need to distinguish
// "feature absent in this host version" from "feature rejected the call".
type Value interface {
	// Get reads a property. Reading from undefined fails.
	Get(name string) (Value, error)

	// Set writes a property.
	Set(name string, value any) error

	// Call invokes a method with the receiver as this. Arguments may
	// be Go scalars, maps, slices, Value or Func instances of the
	// same backend, or nil.
	Call(method string, args ...any) (Value, error)

	// String reports the value as a string, and whether it is one.
	String() (string, bool)

	// Bool reports the value as a bool, and whether it is one.
	Bool() (bool, bool)

	// Float reports the value as a number, and whether it is one.
	Float() (float64, bool)

	// IsUndefined reports whether the value is undefined or null.
	IsUndefined() bool
}

// Func is a Go callback materialized as a host-callable function. The
// same Func instance passed at registration must be passed again to
// unregister; the host compares function identity.
//
// Release frees the backing closure. Calling the host function after
// Release is a caller error.
type Func interface {
	Release()
}

// Env is a concrete JavaScript environment.
type Env interface {
	// Global returns the global object (window in a browser).
	Global() Value

	// NewFunc wraps a Go function as a host-callable value.
	NewFunc(fn func(args []Value)) Func
}

// Root resolves Telegram.WebApp inside env. A missing or undefined node
// anywhere on the path yields ErrUnavailable.
func Root(env Env) (Value, error) {
	if env == nil {
		return nil, ErrUnavailable
	}
	tg, err := env.Global().Get("Telegram")
	if err != nil || tg.IsUndefined() {
		return nil, ErrUnavailable
	}
	webApp, err := tg.Get("WebApp")
	if err != nil || webApp.IsUndefined() {
		return nil, ErrUnavailable
	}
	return webApp, nil
}

var defaultEnv Env

// Default returns the process-wide host environment. Under js/wasm the
// jshost backend registers itself at program load; elsewhere the mock
// environment (or a test) must install one via SetDefault first.
func Default() (Env, error) {
	if defaultEnv == nil {
		return nil, ErrUnavailable
	}
	return defaultEnv, nil
}

// SetDefault installs env as the process-wide host environment.
func SetDefault(env Env) {
	defaultEnv = env
}
