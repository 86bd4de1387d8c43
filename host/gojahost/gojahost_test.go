package gojahost

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telegram-webapp/sdk/host"
)

func TestGetAndScalars(t *testing.T) {
	env := New()
	_, err := env.RunString(`var app = {name: "mini", count: 3, live: true, nothing: null};`)
	require.NoError(t, err)

	app, err := env.Global().Get("app")
	require.NoError(t, err)

	name, err := app.Get("name")
	require.NoError(t, err)
	s, ok := name.String()
	assert.True(t, ok)
	assert.Equal(t, "mini", s)

	count, err := app.Get("count")
	require.NoError(t, err)
	f, ok := count.Float()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	live, err := app.Get("live")
	require.NoError(t, err)
	b, ok := live.Bool()
	assert.True(t, ok)
	assert.True(t, b)

	nothing, err := app.Get("nothing")
	require.NoError(t, err)
	assert.True(t, nothing.IsUndefined())

	missing, err := app.Get("absent")
	require.NoError(t, err)
	assert.True(t, missing.IsUndefined())
}

func TestGetFromUndefinedParent(t *testing.T) {
	env := New()
	parent, err := env.Global().Get("noSuchObject")
	require.NoError(t, err)

	_, err = parent.Get("child")
	var callErr *host.CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "noSuchObject.child", callErr.Path)
}

func TestCall(t *testing.T) {
	env := New()
	_, err := env.RunString(`
		var calls = [];
		var app = {
			greet: function(name) { calls.push(name); return "hi " + name; },
			notAFunction: 1,
			throws: function() { throw new Error("boom"); }
		};
	`)
	require.NoError(t, err)

	app, err := env.Global().Get("app")
	require.NoError(t, err)

	res, err := app.Call("greet", "dev")
	require.NoError(t, err)
	s, _ := res.String()
	assert.Equal(t, "hi dev", s)

	_, err = app.Call("missing")
	var callErr *host.CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "app.missing", callErr.Path)

	_, err = app.Call("notAFunction")
	require.ErrorAs(t, err, &callErr)

	_, err = app.Call("throws")
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "app.throws", callErr.Path)
}

func TestFuncIdentityAcrossCalls(t *testing.T) {
	env := New()
	_, err := env.RunString(`
		var registered = [];
		var bus = {
			on: function(fn) { registered.push(fn); },
			off: function(fn) {
				registered = registered.filter(function(f) { return f !== fn; });
			}
		};
	`)
	require.NoError(t, err)

	var fired int
	fn := env.NewFunc(func(args []host.Value) { fired++ })

	bus, err := env.Global().Get("bus")
	require.NoError(t, err)
	_, err = bus.Call("on", fn)
	require.NoError(t, err)

	// The host must see the same reference on unregistration.
	_, err = bus.Call("off", fn)
	require.NoError(t, err)

	left, err := env.RunString(`registered.length`)
	require.NoError(t, err)
	n, _ := left.Float()
	assert.Equal(t, 0.0, n)
	assert.Equal(t, 0, fired)
}

func TestFuncInvocationAndRelease(t *testing.T) {
	env := New()

	var got []string
	fn := env.NewFunc(func(args []host.Value) {
		s, _ := args[0].String()
		got = append(got, s)
	})

	require.NoError(t, env.Global().Set("cb", fn))
	_, err := env.RunString(`cb("one"); cb("two");`)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got)

	fn.Release()
	_, err = env.RunString(`cb("three")`)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got, "released func must not fire")
}

func TestRootResolution(t *testing.T) {
	env := New()
	_, err := host.Root(env)
	assert.ErrorIs(t, err, host.ErrUnavailable)

	_, err = env.RunString(`var Telegram = {WebApp: {initData: "auth_date=1&hash=x"}};`)
	require.NoError(t, err)

	root, err := host.Root(env)
	require.NoError(t, err)
	initData, err := root.Get("initData")
	require.NoError(t, err)
	s, ok := initData.String()
	assert.True(t, ok)
	assert.Equal(t, "auth_date=1&hash=x", s)
}

func TestDefaultEnvRegistry(t *testing.T) {
	host.SetDefault(nil)
	_, err := host.Default()
	assert.True(t, errors.Is(err, host.ErrUnavailable))

	env := New()
	host.SetDefault(env)
	t.Cleanup(func() { host.SetDefault(nil) })

	got, err := host.Default()
	require.NoError(t, err)
	assert.Equal(t, host.Env(env), got)
}
