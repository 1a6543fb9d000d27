package middleware

import (
	"net/http"

	"skill-marks-system/internal/global/session"

	"github.com/gin-gonic/gin"
)

// StudentAuth gates student-only routes. An unauthenticated request is
// redirected to the student login rather than answered with a status error,
// matching the rest of the redirect-with-message flow.
func StudentAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := session.FromCookie(c)
		if !ok || claims.StudentID == 0 {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(session.PayloadKey, claims)
		c.Next()
	}
}

// AdminAuth gates admin-only routes; failures redirect to the admin login.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := session.FromCookie(c)
		if !ok || !claims.Admin {
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}
		c.Set(session.PayloadKey, claims)
		c.Next()
	}
}

// AnySession gates routes open to both students and the admin. The handler
// decides ownership itself; unauthenticated requests go to the student login.
func AnySession() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := session.FromCookie(c)
		if !ok || (claims.StudentID == 0 && !claims.Admin) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(session.PayloadKey, claims)
		c.Next()
	}
}
