// Package session implements cookie sessions backed by signed JWTs. A session
// carries either a student identity or an admin flag, plus a random session id
// (SID) used to key pending flash messages.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"skill-marks-system/config"

	"github.com/golang-jwt/jwt"
)

// CookieName is the session cookie for both student and admin sessions.
const CookieName = "session"

// PayloadKey is the gin context key the auth middleware stores claims under.
const PayloadKey = "payload"

type Claims struct {
	StudentID uint   `json:"student_id,omitempty"`
	Username  string `json:"username,omitempty"`
	Admin     bool   `json:"admin,omitempty"`
	SID       string `json:"sid"`
	jwt.StandardClaims
}

// NewStudent builds claims for an authenticated student session.
func NewStudent(studentID uint, username string) *Claims {
	return &Claims{
		StudentID:      studentID,
		Username:       username,
		SID:            newSID(),
		StandardClaims: standardClaims(),
	}
}

// NewAdmin builds claims for an authenticated admin session.
func NewAdmin() *Claims {
	return &Claims{
		Admin:          true,
		SID:            newSID(),
		StandardClaims: standardClaims(),
	}
}

// NewAnonymous builds claims that carry only a session id, no identity. Used
// on logout so pending flash messages survive the loss of authentication.
func NewAnonymous(sid string) *Claims {
	if sid == "" {
		sid = newSID()
	}
	return &Claims{
		SID:            sid,
		StandardClaims: standardClaims(),
	}
}

func standardClaims() jwt.StandardClaims {
	return jwt.StandardClaims{
		ExpiresAt: time.Now().Unix() + config.Get().Session.Expire,
		IssuedAt:  time.Now().Unix(),
	}
}

func newSID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// CreateToken signs the claims with the configured session secret.
func CreateToken(claims *Claims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.Get().Session.Secret))
	if err != nil {
		panic(err)
	}
	return token
}

// ParseToken validates a session token and returns its claims.
func ParseToken(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Get().Session.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
