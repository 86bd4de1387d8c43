// Package auth turns verified init data into an application session.
//
// It is the server-side counterpart of the client SDK: a backend receives
// the raw init-data string from the Mini App, authenticates it against
// the bot token, and issues a short-lived JWT for subsequent requests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/telegram-webapp/sdk/initdata"
)

const (
	// DefaultMaxAge bounds how old an accepted init-data payload may be.
	DefaultMaxAge = time.Hour

	// forwardSkew tolerates client clocks slightly ahead of ours.
	forwardSkew = 5 * time.Minute
)

var (
	// ErrExpired is returned when auth_date is older than the allowed
	// window.
	ErrExpired = errors.New("auth: init data expired")

	// ErrFromFuture is returned when auth_date is further ahead of the
	// server clock than clock skew can explain.
	ErrFromFuture = errors.New("auth: auth_date in the future")

	// ErrNoUser is returned when the payload carries no user object.
	ErrNoUser = errors.New("auth: no user in init data")
)

// Authenticate verifies raw against botToken, enforces freshness and
// returns the parsed payload. maxAge <= 0 selects DefaultMaxAge.
func Authenticate(raw, botToken string, maxAge time.Duration) (*initdata.InitData, error) {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}

	if err := initdata.VerifyHMACSHA256(raw, botToken); err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	data, err := initdata.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	now := time.Now()
	issued := time.Unix(int64(data.AuthDate), 0)
	if issued.After(now.Add(forwardSkew)) {
		return nil, ErrFromFuture
	}
	if now.Sub(issued) > maxAge {
		return nil, ErrExpired
	}
	if data.User == nil {
		return nil, ErrNoUser
	}
	return data, nil
}
