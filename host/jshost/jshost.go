//go:build js && wasm

// Package jshost binds the host contract to the real browser through
// syscall/js. Importing it (the sdk root package does this under js/wasm)
// registers the browser as the process-default host environment.
package jshost

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/telegram-webapp/sdk/host"
)

func init() {
	host.SetDefault(Env{})
}

// Env is the browser environment. The zero value is ready to use.
type Env struct{}

// Global returns the JavaScript global object (window).
func (Env) Global() host.Value {
	return &value{v: js.Global()}
}

// NewFunc wraps fn as a JavaScript function backed by js.FuncOf. The
// wrapper keeps a stable identity until Release.
func (Env) NewFunc(fn func(args []host.Value)) host.Func {
	f := &jsFunc{}
	f.fn = js.FuncOf(func(this js.Value, jsArgs []js.Value) any {
		args := make([]host.Value, len(jsArgs))
		for i, a := range jsArgs {
			args[i] = &value{v: a, path: fmt.Sprintf("arg[%d]", i)}
		}
		fn(args)
		return nil
	})
	return f
}

type jsFunc struct {
	fn js.Func
}

func (f *jsFunc) Release() {
	f.fn.Release()
}

type value struct {
	v    js.Value
	path string
}

func (v *value) child(name string) string {
	if v.path == "" {
		return name
	}
	return v.path + "." + name
}

func (v *value) Get(name string) (res host.Value, err error) {
	path := v.child(name)
	if v.IsUndefined() {
		return nil, &host.CallError{Path: path, Err: errors.New("parent is undefined")}
	}
	defer catch(path, &err)
	return &value{v: v.v.Get(name), path: path}, nil
}

func (v *value) Set(name string, val any) (err error) {
	path := v.child(name)
	if v.IsUndefined() {
		return &host.CallError{Path: path, Err: errors.New("parent is undefined")}
	}
	defer catch(path, &err)
	v.v.Set(name, convert(val))
	return nil
}

func (v *value) Call(method string, args ...any) (res host.Value, err error) {
	path := v.child(method)
	if v.IsUndefined() {
		return nil, &host.CallError{Path: path, Err: errors.New("parent is undefined")}
	}
	member := v.v.Get(method)
	if member.Type() != js.TypeFunction {
		if member.IsUndefined() {
			return nil, &host.CallError{Path: path, Err: errors.New("missing member")}
		}
		return nil, &host.CallError{Path: path, Err: errors.New("not a function")}
	}

	converted := make([]any, len(args))
	for i, a := range args {
		converted[i] = convert(a)
	}
	// syscall/js reports host-thrown errors by panicking.
	defer catch(path, &err)
	return &value{v: v.v.Call(method, converted...), path: path + "()"}, nil
}

func (v *value) String() (string, bool) {
	if v.v.Type() != js.TypeString {
		return "", false
	}
	return v.v.String(), true
}

func (v *value) Bool() (bool, bool) {
	if v.v.Type() != js.TypeBoolean {
		return false, false
	}
	return v.v.Bool(), true
}

func (v *value) Float() (float64, bool) {
	if v.v.Type() != js.TypeNumber {
		return 0, false
	}
	return v.v.Float(), true
}

func (v *value) IsUndefined() bool {
	return v.v.IsUndefined() || v.v.IsNull()
}

func convert(arg any) any {
	switch a := arg.(type) {
	case *value:
		return a.v
	case *jsFunc:
		return a.fn
	default:
		return a
	}
}

func catch(path string, err *error) {
	if r := recover(); r != nil {
		*err = &host.CallError{Path: path, Err: fmt.Errorf("%v", r)}
	}
}
