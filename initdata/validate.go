package initdata

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"
)

// Validation failures. Signature validation deliberately does not check
// auth_date freshness; enforce that separately if replay protection is
// needed (the auth package does).
var (
	// ErrInvalidEncoding means the payload contained a pair without
	// "=", an invalid percent sequence, or non-UTF8 data.
	ErrInvalidEncoding = errors.New("initdata: invalid encoding")

	// ErrInvalidSignatureEncoding means the signature value was not
	// valid base64 or not a 64-byte Ed25519 signature.
	ErrInvalidSignatureEncoding = errors.New("initdata: invalid signature encoding")

	// ErrInvalidPublicKey means the Ed25519 public key was not 32 bytes.
	ErrInvalidPublicKey = errors.New("initdata: invalid public key")

	// ErrSignatureMismatch means the payload did not verify.
	ErrSignatureMismatch = errors.New("initdata: signature mismatch")
)

// MissingFieldError reports that the payload lacked a required field,
// such as the hash or signature being verified against.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("initdata: missing required field: %s", e.Field)
}

// Key is the key material used to validate a payload: either BotToken or
// Ed25519PublicKey.
type Key interface {
	validate(raw string) error
}

// BotToken validates the hash field with HMAC-SHA256.
type BotToken string

func (t BotToken) validate(raw string) error {
	return VerifyHMACSHA256(raw, string(t))
}

// Ed25519PublicKey validates the signature field with Ed25519. It must be
// 32 bytes long.
type Ed25519PublicKey []byte

func (k Ed25519PublicKey) validate(raw string) error {
	return VerifyEd25519(raw, k)
}

// Validate checks the authenticity of a raw init-data string with the
// given key. The string must be the exact value the client received from
// the host; any re-encoding can invalidate the signature.
func Validate(raw string, key Key) error {
	return key.validate(raw)
}

// VerifyHMACSHA256 validates the hash parameter of raw init data against
// the bot token the payload was issued for.
//
// The secret key is SHA256("WebAppData" + botToken) and the expected hash
// is the lowercase hex HMAC-SHA256 of the check string, per Telegram's
// validation rules for Mini Apps.
func VerifyHMACSHA256(raw, botToken string) error {
	checkString, gotHash, err := checkStringFor(raw, "hash")
	if err != nil {
		return err
	}

	secret := sha256.Sum256([]byte("WebAppData" + botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(checkString))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(gotHash)) {
		return ErrSignatureMismatch
	}
	return nil
}

// VerifyEd25519 validates the signature parameter of raw init data
// against a 32-byte Ed25519 public key, for third-party validation where
// the bot token is not available.
func VerifyEd25519(raw string, publicKey []byte) error {
	checkString, sigB64, err := checkStringFor(raw, "signature")
	if err != nil {
		return err
	}

	sig, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return ErrInvalidSignatureEncoding
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return ErrInvalidPublicKey
	}

	if !ed25519.Verify(ed25519.PublicKey(publicKey), []byte(checkString), sig) {
		return ErrSignatureMismatch
	}
	return nil
}

// checkStringFor builds the canonical check string: every pair except the
// signature field, sorted by key, joined as "k=v" with newlines. Values
// are percent-decoded; keys are used as-is. Duplicate keys are kept, both
// occurrences ending up adjacent after the sort.
func checkStringFor(raw, signatureField string) (string, string, error) {
	type pair struct{ key, value string }

	var pairs []pair
	var signature string
	var found bool

	for _, segment := range strings.Split(raw, "&") {
		key, encoded, ok := strings.Cut(segment, "=")
		if !ok {
			return "", "", ErrInvalidEncoding
		}
		value, err := url.PathUnescape(encoded)
		if err != nil || !utf8.ValidString(value) {
			return "", "", ErrInvalidEncoding
		}
		if key == signatureField {
			signature = value
			found = true
			continue
		}
		pairs = append(pairs, pair{key, value})
	}

	if !found {
		return "", "", &MissingFieldError{Field: signatureField}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].key < pairs[j].key
	})

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(p.value)
	}
	return b.String(), signature, nil
}
