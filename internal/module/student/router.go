package student

import (
	"net/http"

	"skill-marks-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (s *ModuleStudent) InitRouter(r *gin.RouterGroup) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})

	r.GET("/login", LoginPage)
	r.POST("/login", Login)
	r.GET("/logout", Logout)

	authed := r.Group("")
	authed.Use(middleware.StudentAuth())
	{
		authed.GET("/dashboard", Dashboard)
	}
}
