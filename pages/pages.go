// Package pages is the process-wide page inventory. Pages register
// themselves from init functions anywhere in the program:
//
//	func init() {
//		pages.Register("/settings", renderSettings)
//	}
//
// and the router package turns the inventory into a running route table.
// The registry is append-only during program load and read-only after;
// registration order is preserved but carries no meaning beyond being
// deterministic.
package pages

// Page is a single routable page: an exact path and the procedure that
// renders it.
type Page struct {
	Path    string
	Handler func()
}

var registry []Page

// Register appends a page to the inventory. Duplicate paths are allowed;
// dispatch uses the first registration.
func Register(path string, handler func()) {
	registry = append(registry, Page{Path: path, Handler: handler})
}

// All returns the registered pages in registration order. The returned
// slice is shared; callers must not modify it.
func All() []Page {
	return registry
}
