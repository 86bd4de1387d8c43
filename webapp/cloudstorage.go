package webapp

import "github.com/telegram-webapp/sdk/host"

// Cloud storage methods return host promise values as-is; the SDK has no
// event loop of its own to await them on. Callers chain completion with
// promise.Call("then", fn) using a function from the same environment,
// or ignore the result for fire-and-forget writes.

// CloudSet stores a value (up to 4096 bytes) under a key in Telegram
// cloud storage.
func (w *WebApp) CloudSet(key, value string) (host.Value, error) {
	return w.cloudCall("setItem", key, value)
}

// CloudGet resolves to the value stored under key.
func (w *WebApp) CloudGet(key string) (host.Value, error) {
	return w.cloudCall("getItem", key)
}

// CloudGetAll resolves to a map of the requested keys.
func (w *WebApp) CloudGetAll(keys []string) (host.Value, error) {
	converted := make([]any, len(keys))
	for i, k := range keys {
		converted[i] = k
	}
	return w.cloudCall("getItems", converted)
}

// CloudRemove deletes the value stored under key.
func (w *WebApp) CloudRemove(key string) (host.Value, error) {
	return w.cloudCall("removeItem", key)
}

// CloudKeys resolves to the list of stored keys.
func (w *WebApp) CloudKeys() (host.Value, error) {
	return w.cloudCall("getKeys")
}

func (w *WebApp) cloudCall(method string, args ...any) (host.Value, error) {
	obj, err := w.root.Get("CloudStorage")
	if err != nil {
		return nil, err
	}
	return obj.Call(method, args...)
}
