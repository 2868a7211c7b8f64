package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "session"

// Session is the authenticated identity carried by the signed cookie. It is
// created on login, destroyed on logout, and immutable in between.
type Session struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

// Codec signs and verifies session cookie values. The secret comes from the
// environment at startup; there is no package-level key.
type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

// Encode creates a signed cookie value in the format "payload|signature",
// both parts base64url-encoded.
func (c *Codec) Encode(s Session) (string, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(payload)
	signature := mac.Sum(nil)
	return fmt.Sprintf("%s|%s", base64.URLEncoding.EncodeToString(payload), base64.URLEncoding.EncodeToString(signature)), nil
}

// Decode verifies the signed cookie value and returns the session it carries.
func (c *Codec) Decode(signedValue string) (Session, error) {
	var s Session

	parts := strings.Split(signedValue, "|")
	if len(parts) != 2 {
		return s, errors.New("invalid cookie format")
	}

	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return s, errors.New("invalid payload encoding")
	}

	signature, err := base64.URLEncoding.DecodeString(parts[1])
	if err != nil {
		return s, errors.New("invalid signature encoding")
	}

	mac := hmac.New(sha256.New, c.secret)
	mac.Write(payload)
	expectedSignature := mac.Sum(nil)

	if !hmac.Equal(signature, expectedSignature) {
		return s, errors.New("invalid signature")
	}

	if err := json.Unmarshal(payload, &s); err != nil {
		return s, errors.New("invalid payload")
	}
	return s, nil
}
