package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid session token")

// HMACStrategy signs workspace identifiers with an HMAC so a browser cannot
// forge another session's workspace.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed token for the workspace.
func (s *HMACStrategy) IssueToken(workspaceID string) (string, error) {
	if strings.Contains(workspaceID, ":") {
		return "", fmt.Errorf("workspace id must not contain ':'")
	}
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%s:%d", workspaceID, expires)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates the token and returns the encoded workspace ID.
func (s *HMACStrategy) ParseToken(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return "", ErrInvalidToken
	}

	payload := strings.Join(parts[:2], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return "", ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}
	if time.Unix(expires, 0).Before(time.Now()) {
		return "", ErrInvalidToken
	}

	return parts[0], nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
