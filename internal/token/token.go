// Package token implements the stateless bearer-token scheme of spec
// §4.8: base64url(payload) . base64url(HMAC-SHA256(payload)). There is no
// header segment and no server-side session store — this deliberately
// replaces the teacher's golang-jwt-based three-segment tokens, which
// cannot produce this two-segment shape without carrying a first segment
// nothing here needs.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hubdispatch/backend/internal/model"
)

var (
	// ErrMalformed covers any token that doesn't parse as two base64url
	// segments with a valid JSON payload.
	ErrMalformed = errors.New("token: malformed token")
	// ErrBadSignature is returned when the recomputed HMAC doesn't match.
	ErrBadSignature = errors.New("token: signature mismatch")
	// ErrExpired is returned when the payload's expAt has passed.
	ErrExpired = errors.New("token: expired")
)

// Claims is the token payload.
type Claims struct {
	Username string    `json:"username"`
	Role     model.Role `json:"role"`
	ExpAt    time.Time `json:"expAt"`
}

// Manager issues and verifies tokens with a fixed HMAC secret and TTL.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager. ttl is the lifetime a freshly issued token
// carries (spec §4.8 default: 6h).
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue builds a signed token for the given user, stamping expAt as
// issuedAt + ttl.
func (m *Manager) Issue(username string, role model.Role) (string, error) {
	return m.issueAt(username, role, time.Now().UTC())
}

func (m *Manager) issueAt(username string, role model.Role, issuedAt time.Time) (string, error) {
	claims := Claims{Username: username, Role: role, ExpAt: issuedAt.Add(m.ttl)}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("token: marshaling claims: %w", err)
	}

	payloadSeg := base64.RawURLEncoding.EncodeToString(payload)
	sig := m.sign(payload)
	sigSeg := base64.RawURLEncoding.EncodeToString(sig)

	return payloadSeg + "." + sigSeg, nil
}

// Verify parses and validates a token, returning its claims.
func (m *Manager) Verify(tok string) (Claims, error) {
	dot := strings.IndexByte(tok, '.')
	if dot < 0 {
		return Claims{}, ErrMalformed
	}
	payloadSeg, sigSeg := tok[:dot], tok[dot+1:]

	payload, err := base64.RawURLEncoding.DecodeString(payloadSeg)
	if err != nil {
		return Claims{}, ErrMalformed
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigSeg)
	if err != nil {
		return Claims{}, ErrMalformed
	}

	wantSig := m.sign(payload)
	if subtle.ConstantTimeCompare(sig, wantSig) != 1 {
		return Claims{}, ErrBadSignature
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, ErrMalformed
	}
	if time.Now().UTC().After(claims.ExpAt) {
		return Claims{}, ErrExpired
	}
	return claims, nil
}

func (m *Manager) sign(payload []byte) []byte {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write(payload)
	return mac.Sum(nil)
}

// ComparePin performs a constant-time plaintext PIN comparison (spec §9).
func ComparePin(stored, supplied string) bool {
	if len(stored) != len(supplied) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// App is one of the three access scopes a role may be granted.
type App string

const (
	AppDispatch App = "dispatch"
	AppLead     App = "lead"
	AppMgmt     App = "mgmt"
)

// Access reports the role→app-access matrix of spec §4.8.
func Access(role model.Role) map[App]bool {
	switch role {
	case model.RoleDispatch:
		return map[App]bool{AppDispatch: true, AppLead: false, AppMgmt: false}
	case model.RoleLead:
		return map[App]bool{AppDispatch: false, AppLead: true, AppMgmt: false}
	case model.RoleMgmt:
		return map[App]bool{AppDispatch: true, AppLead: true, AppMgmt: true}
	default:
		return map[App]bool{}
	}
}

// HasAccess reports whether role grants the named app scope.
func HasAccess(role model.Role, app App) bool {
	return Access(role)[app]
}
