// Package gojahost implements the host contract on top of an embedded
// goja JavaScript runtime.
//
// It backs the mock Telegram environment and every test that exercises
// host-facing code, so the SDK's binding layer runs unmodified outside a
// browser. goja is not safe for concurrent use; like the real host, this
// backend assumes a single-threaded caller.
package gojahost

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"

	"github.com/telegram-webapp/sdk/host"
)

// Env wraps a goja runtime as a host environment.
type Env struct {
	vm *goja.Runtime
}

// New creates an empty JavaScript environment.
func New() *Env {
	return &Env{vm: goja.New()}
}

// Runtime exposes the underlying goja runtime for environment setup, such
// as the mock package's bootstrap script.
func (e *Env) Runtime() *goja.Runtime {
	return e.vm
}

// RunString evaluates src in the environment.
func (e *Env) RunString(src string) (host.Value, error) {
	v, err := e.vm.RunString(src)
	if err != nil {
		return nil, &host.CallError{Path: "eval", Err: err}
	}
	return e.wrap(v, ""), nil
}

// Global returns the runtime's global object.
func (e *Env) Global() host.Value {
	return e.wrap(e.vm.GlobalObject(), "")
}

// NewFunc wraps fn as a JavaScript function. The returned Func keeps a
// stable identity, so registering and unregistering with it satisfies
// hosts that compare callbacks by reference.
func (e *Env) NewFunc(fn func(args []host.Value)) host.Func {
	f := &gojaFunc{env: e}
	f.fnVal = e.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if f.released {
			return goja.Undefined()
		}
		args := make([]host.Value, len(call.Arguments))
		for i, a := range call.Arguments {
			args[i] = e.wrap(a, fmt.Sprintf("arg[%d]", i))
		}
		fn(args)
		return goja.Undefined()
	})
	return f
}

type gojaFunc struct {
	env      *Env
	fnVal    goja.Value
	released bool
}

func (f *gojaFunc) Release() {
	f.released = true
}

func (e *Env) wrap(v goja.Value, path string) *value {
	if v == nil {
		v = goja.Undefined()
	}
	return &value{env: e, v: v, path: path}
}

type value struct {
	env  *Env
	v    goja.Value
	path string
}

func (v *value) child(name string) string {
	if v.path == "" {
		return name
	}
	return v.path + "." + name
}

func (v *value) Get(name string) (host.Value, error) {
	path := v.child(name)
	if v.IsUndefined() {
		return nil, &host.CallError{Path: path, Err: errors.New("parent is undefined")}
	}
	obj := v.v.ToObject(v.env.vm)
	return v.env.wrap(obj.Get(name), path), nil
}

func (v *value) Set(name string, val any) error {
	path := v.child(name)
	if v.IsUndefined() {
		return &host.CallError{Path: path, Err: errors.New("parent is undefined")}
	}
	obj := v.v.ToObject(v.env.vm)
	if err := obj.Set(name, v.env.convert(val)); err != nil {
		return &host.CallError{Path: path, Err: err}
	}
	return nil
}

func (v *value) Call(method string, args ...any) (host.Value, error) {
	path := v.child(method)
	if v.IsUndefined() {
		return nil, &host.CallError{Path: path, Err: errors.New("parent is undefined")}
	}
	obj := v.v.ToObject(v.env.vm)
	member := obj.Get(method)
	fn, ok := goja.AssertFunction(member)
	if !ok {
		if member == nil || goja.IsUndefined(member) {
			return nil, &host.CallError{Path: path, Err: errors.New("missing member")}
		}
		return nil, &host.CallError{Path: path, Err: errors.New("not a function")}
	}

	converted := make([]goja.Value, len(args))
	for i, a := range args {
		converted[i] = v.env.convert(a)
	}
	res, err := fn(obj, converted...)
	if err != nil {
		return nil, &host.CallError{Path: path, Err: err}
	}
	return v.env.wrap(res, path+"()"), nil
}

func (v *value) String() (string, bool) {
	s, ok := v.v.Export().(string)
	return s, ok
}

func (v *value) Bool() (bool, bool) {
	b, ok := v.v.Export().(bool)
	return b, ok
}

func (v *value) Float() (float64, bool) {
	switch n := v.v.Export().(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func (v *value) IsUndefined() bool {
	return goja.IsUndefined(v.v) || goja.IsNull(v.v)
}

// convert maps Go arguments onto goja values. Values and Funcs created by
// this environment pass through with their identity preserved.
func (e *Env) convert(arg any) goja.Value {
	switch a := arg.(type) {
	case nil:
		return goja.Null()
	case *value:
		return a.v
	case *gojaFunc:
		return a.fnVal
	default:
		return e.vm.ToValue(arg)
	}
}
