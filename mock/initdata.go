package mock

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// GenerateInitData builds a URL-encoded init-data string from mock user
// info. The hash is embedded as given; pass the output of SignInitData's
// flow (via Config.BotToken) when a verifiable payload is needed.
func GenerateInitData(user *User, authDate uint64, queryID, hash string) string {
	var b strings.Builder
	if queryID != "" {
		b.WriteString("query_id=")
		b.WriteString(escape(queryID))
		b.WriteByte('&')
	}
	b.WriteString("user=")
	b.WriteString(escape(userJSON(user)))
	b.WriteString("&auth_date=")
	b.WriteString(strconv.FormatUint(authDate, 10))
	b.WriteString("&hash=")
	b.WriteString(hash)
	return b.String()
}

// SignInitData builds init data whose hash genuinely verifies against
// botToken, so mock payloads round-trip through initdata validation.
func SignInitData(user *User, authDate uint64, queryID, botToken string) string {
	pairs := map[string]string{
		"user":      userJSON(user),
		"auth_date": strconv.FormatUint(authDate, 10),
	}
	if queryID != "" {
		pairs["query_id"] = queryID
	}

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + "=" + pairs[k]
	}

	secret := sha256.Sum256([]byte("WebAppData" + botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(lines, "\n")))
	hash := hex.EncodeToString(mac.Sum(nil))

	return GenerateInitData(user, authDate, queryID, hash)
}

// escape percent-encodes the way Telegram does: spaces become %20, not
// "+", so the payload survives the verifier's plain percent-decoding.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func userJSON(user *User) string {
	if user == nil {
		user = &User{ID: 1, FirstName: "Dev"}
	}
	data, err := json.Marshal(user)
	if err != nil {
		return "{}"
	}
	return string(data)
}
