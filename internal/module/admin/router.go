package admin

import (
	"skill-marks-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (a *ModuleAdmin) InitRouter(r *gin.RouterGroup) {
	adminGroup := r.Group("/admin")

	adminGroup.GET("", LoginPage)
	adminGroup.POST("", Login)
	adminGroup.GET("/logout", Logout)

	authed := adminGroup.Group("")
	authed.Use(middleware.AdminAuth())
	{
		authed.GET("/dashboard", Dashboard)
		authed.GET("/approve/:id", Approve)
		authed.GET("/reject/:id", Reject)
		authed.GET("/export", Export)
	}
}
