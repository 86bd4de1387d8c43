//go:build js && wasm

package sdk

// Importing jshost registers the browser backend as the process-default
// host environment at program load.
import _ "github.com/telegram-webapp/sdk/host/jshost"
