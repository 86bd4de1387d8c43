package initdata

import (
	"bytes"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
)

func signHMAC(botToken, checkString string) string {
	secret := sha256.Sum256([]byte("WebAppData" + botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(checkString))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyHMACSHA256_Valid(t *testing.T) {
	botToken := "123456:ABC"
	hash := signHMAC(botToken, "a=1\nb=2")
	raw := "a=1&b=2&hash=" + hash

	if err := VerifyHMACSHA256(raw, botToken); err != nil {
		t.Fatalf("expected valid init data, got %v", err)
	}
}

func TestVerifyHMACSHA256_Tampered(t *testing.T) {
	botToken := "123456:ABC"
	hash := signHMAC(botToken, "a=1\nb=2")

	cases := []struct {
		name string
		raw  string
	}{
		{"modified value", "a=1&b=3&hash=" + hash},
		{"modified key", "a=1&c=2&hash=" + hash},
		{"extra pair", "a=1&b=2&x=1&hash=" + hash},
		{"modified hash", "a=1&b=2&hash=" + hash[:len(hash)-1] + "0"},
	}

	for _, tc := range cases {
		if err := VerifyHMACSHA256(tc.raw, botToken); !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("%s: got %v; want ErrSignatureMismatch", tc.name, err)
		}
	}
}

func TestVerifyHMACSHA256_SortsAndDecodes(t *testing.T) {
	botToken := "123456:ABC"
	// Pairs arrive unsorted and percent-encoded; the check string is
	// sorted by key with decoded values.
	hash := signHMAC(botToken, "auth_date=1\nuser={\"id\":123}")
	raw := "user=%7B%22id%22%3A123%7D&auth_date=1&hash=" + hash

	if err := VerifyHMACSHA256(raw, botToken); err != nil {
		t.Fatalf("expected valid init data, got %v", err)
	}
}

func TestVerifyHMACSHA256_MissingHash(t *testing.T) {
	err := VerifyHMACSHA256("a=1&b=2", "123456:ABC")

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v; want MissingFieldError", err)
	}
	if missing.Field != "hash" {
		t.Fatalf("missing field = %q; want %q", missing.Field, "hash")
	}
}

func TestVerifyHMACSHA256_InvalidEncoding(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty input", ""},
		{"pair without equals", "a=1&b&hash=x"},
		{"bad percent sequence", "a=%zz&hash=x"},
		{"non-utf8 value", "a=%ff%fe&hash=x"},
	}

	for _, tc := range cases {
		if err := VerifyHMACSHA256(tc.raw, "t"); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("%s: got %v; want ErrInvalidEncoding", tc.name, err)
		}
	}
}

func TestVerifyEd25519_Valid(t *testing.T) {
	seed := bytes.Repeat([]byte{42}, ed25519.SeedSize)
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	sig := ed25519.Sign(priv, []byte("a=1\nb=2"))
	raw := "a=1&b=2&signature=" + base64.StdEncoding.EncodeToString(sig)

	if err := VerifyEd25519(raw, pub); err != nil {
		t.Fatalf("expected valid init data, got %v", err)
	}
}

func TestVerifyEd25519_Tampered(t *testing.T) {
	seed := bytes.Repeat([]byte{42}, ed25519.SeedSize)
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	sig := ed25519.Sign(priv, []byte("a=1\nb=2"))
	raw := "a=1&b=3&signature=" + base64.StdEncoding.EncodeToString(sig)

	if err := VerifyEd25519(raw, pub); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("got %v; want ErrSignatureMismatch", err)
	}
}

func TestVerifyEd25519_BadInputs(t *testing.T) {
	seed := bytes.Repeat([]byte{42}, ed25519.SeedSize)
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	sig := base64.StdEncoding.EncodeToString(ed25519.Sign(priv, []byte("a=1")))

	cases := []struct {
		name string
		raw  string
		key  []byte
		want error
	}{
		{"not base64", "a=1&signature=!!!", pub, ErrInvalidSignatureEncoding},
		{"wrong length", "a=1&signature=" + base64.StdEncoding.EncodeToString([]byte("short")), pub, ErrInvalidSignatureEncoding},
		{"short public key", "a=1&signature=" + sig, pub[:16], ErrInvalidPublicKey},
	}

	for _, tc := range cases {
		if err := VerifyEd25519(tc.raw, tc.key); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v; want %v", tc.name, err, tc.want)
		}
	}
}

func TestVerifyEd25519_MissingSignature(t *testing.T) {
	err := VerifyEd25519("a=1&b=2", make([]byte, ed25519.PublicKeySize))

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v; want MissingFieldError", err)
	}
	if missing.Field != "signature" {
		t.Fatalf("missing field = %q; want %q", missing.Field, "signature")
	}
}

func TestValidate_DispatchesOnKey(t *testing.T) {
	botToken := "123456:ABC"
	raw := "a=1&b=2&hash=" + signHMAC(botToken, "a=1\nb=2")
	if err := Validate(raw, BotToken(botToken)); err != nil {
		t.Fatalf("BotToken key: %v", err)
	}

	seed := bytes.Repeat([]byte{7}, ed25519.SeedSize)
	priv := ed25519.NewKeyFromSeed(seed)
	sig := ed25519.Sign(priv, []byte("a=1\nb=2"))
	raw = "a=1&b=2&signature=" + base64.StdEncoding.EncodeToString(sig)
	if err := Validate(raw, Ed25519PublicKey(priv.Public().(ed25519.PublicKey))); err != nil {
		t.Fatalf("Ed25519 key: %v", err)
	}
}

func TestCheckString_DuplicateKeysKept(t *testing.T) {
	botToken := "123456:ABC"
	// Duplicates stay in the check string in input order after the
	// stable sort groups them by key.
	hash := signHMAC(botToken, "a=1\na=2\nb=3")
	raw := fmt.Sprintf("a=1&b=3&a=2&hash=%s", hash)

	if err := VerifyHMACSHA256(raw, botToken); err != nil {
		t.Fatalf("expected duplicates to validate, got %v", err)
	}
}
