package session

import (
	"github.com/gin-gonic/gin"
)

// FromContext returns the claims the auth middleware stored on the request.
func FromContext(c *gin.Context) (claims *Claims, exist bool) {
	payload, _ := c.Get(PayloadKey)
	claims, exist = payload.(*Claims)
	return
}

// SetCookie issues the session cookie for the given claims.
func SetCookie(c *gin.Context, claims *Claims) {
	c.SetCookie(CookieName, CreateToken(claims), int(claims.ExpiresAt-claims.IssuedAt), "/", "", false, true)
}

// ClearCookie drops the session cookie.
func ClearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// FromCookie parses the session cookie on the request, if any.
func FromCookie(c *gin.Context) (*Claims, bool) {
	tokenString, err := c.Cookie(CookieName)
	if err != nil || tokenString == "" {
		return nil, false
	}
	return ParseToken(tokenString)
}
