package initdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ParseError reports a malformed init-data payload, naming the field that
// failed to decode.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("initdata: parse %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("initdata: parse %s", e.Field)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errMissing = errors.New("missing")

// Parse decodes a raw init-data query string into an InitData record.
//
// The raw string is never modified; callers that need it later for
// signature validation must keep the original. auth_date and hash are
// required, everything else is optional. The user, receiver and chat
// fields arrive as URL-encoded JSON and are decoded into their typed
// records here.
func Parse(raw string) (*InitData, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, &ParseError{Field: "init_data", Err: err}
	}

	data := &InitData{
		QueryID:      values.Get("query_id"),
		ChatType:     values.Get("chat_type"),
		ChatInstance: values.Get("chat_instance"),
		StartParam:   values.Get("start_param"),
		Signature:    values.Get("signature"),
	}

	authDate := values.Get("auth_date")
	if authDate == "" {
		return nil, &ParseError{Field: "auth_date", Err: errMissing}
	}
	data.AuthDate, err = strconv.ParseUint(authDate, 10, 64)
	if err != nil {
		return nil, &ParseError{Field: "auth_date", Err: err}
	}

	data.Hash = values.Get("hash")
	if data.Hash == "" {
		return nil, &ParseError{Field: "hash", Err: errMissing}
	}

	if v := values.Get("can_send_after"); v != "" {
		data.CanSendAfter, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, &ParseError{Field: "can_send_after", Err: err}
		}
	}

	if v := values.Get("user"); v != "" {
		data.User = new(User)
		if err := json.Unmarshal([]byte(v), data.User); err != nil {
			return nil, &ParseError{Field: "user", Err: err}
		}
	}
	if v := values.Get("receiver"); v != "" {
		data.Receiver = new(User)
		if err := json.Unmarshal([]byte(v), data.Receiver); err != nil {
			return nil, &ParseError{Field: "receiver", Err: err}
		}
	}
	if v := values.Get("chat"); v != "" {
		data.Chat = new(Chat)
		if err := json.Unmarshal([]byte(v), data.Chat); err != nil {
			return nil, &ParseError{Field: "chat", Err: err}
		}
	}

	return data, nil
}
