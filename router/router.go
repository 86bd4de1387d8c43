// Package router drives page navigation from the browser history API.
//
// Routes are exact paths. Start renders the page matching the current
// location and then follows popstate events; Navigate pushes a history
// entry and renders the target page. Outside a browser (no window,
// location or history) every operation logs and does nothing, so code
// using the router stays runnable in tests and tools.
package router

import (
	"github.com/telegram-webapp/sdk/host"
	"github.com/telegram-webapp/sdk/internal/logger"
	"github.com/telegram-webapp/sdk/pages"
)

type route struct {
	path    string
	handler func()
}

// Router dispatches page handlers on the current location path.
type Router struct {
	env      host.Env
	routes   []route
	listener host.Func
}

// New creates an empty router bound to the process-default host
// environment. A missing environment is tolerated; the router then
// no-ops, per the non-browser contract.
func New() *Router {
	env, err := host.Default()
	if err != nil {
		logger.Debug("router: no host environment, running detached")
		env = nil
	}
	return NewWithEnv(env)
}

// NewWithEnv creates an empty router bound to env.
func NewWithEnv(env host.Env) *Router {
	return &Router{env: env}
}

// Register appends a route and returns the router for chaining. The
// first registration wins when paths collide.
func (r *Router) Register(path string, handler func()) *Router {
	for _, rt := range r.routes {
		if rt.path == path {
			logger.Warn("router: duplicate route, first registration wins", "path", path)
			break
		}
	}
	r.routes = append(r.routes, route{path: path, handler: handler})
	return r
}

// Start renders the route matching the current path, then installs a
// popstate listener so history navigation keeps dispatching. The initial
// dispatch is unconditional so deep-linked entry renders correctly.
func (r *Router) Start() {
	window, ok := r.window()
	if !ok {
		return
	}

	r.dispatch()

	listener := r.env.NewFunc(func([]host.Value) { r.dispatch() })
	if _, err := window.Call("addEventListener", "popstate", listener); err != nil {
		logger.Warn("router: popstate listener not installed", "err", err)
		listener.Release()
		return
	}
	r.listener = listener
}

// Stop removes the popstate listener installed by Start.
func (r *Router) Stop() {
	if r.listener == nil {
		return
	}
	if window, ok := r.window(); ok {
		if _, err := window.Call("removeEventListener", "popstate", r.listener); err != nil {
			logger.Warn("router: popstate listener not removed", "err", err)
		}
	}
	r.listener.Release()
	r.listener = nil
}

// Navigate pushes a history entry for path and renders its route. The
// dispatch is synthesized here because browsers do not emit popstate for
// pushState; external history navigation still arrives through the
// listener, so the two paths cannot double-fire.
func (r *Router) Navigate(path string) {
	window, ok := r.window()
	if !ok {
		return
	}
	history, err := window.Get("history")
	if err != nil || history.IsUndefined() {
		logger.Debug("router: history unavailable")
		return
	}
	if _, err := history.Call("pushState", nil, "", path); err != nil {
		logger.Warn("router: pushState failed", "err", err)
		return
	}
	r.dispatch()
}

// Mount builds a router from the page registry and starts it. This is
// the usual entry point for applications declaring pages via
// pages.Register.
func Mount() *Router {
	r := New()
	for _, p := range pages.All() {
		r.Register(p.Path, p.Handler)
	}
	r.Start()
	return r
}

func (r *Router) dispatch() {
	path, ok := r.currentPath()
	if !ok {
		return
	}
	for _, rt := range r.routes {
		if rt.path == path {
			rt.handler()
			return
		}
	}
	logger.Debug("router: no route for path", "path", path)
}

func (r *Router) currentPath() (string, bool) {
	window, ok := r.window()
	if !ok {
		return "", false
	}
	location, err := window.Get("location")
	if err != nil || location.IsUndefined() {
		logger.Debug("router: location unavailable")
		return "", false
	}
	pathname, err := location.Get("pathname")
	if err != nil {
		return "", false
	}
	s, ok := pathname.String()
	if !ok {
		return "", false
	}
	return s, true
}

func (r *Router) window() (host.Value, bool) {
	if r.env == nil {
		return nil, false
	}
	return r.env.Global(), true
}
