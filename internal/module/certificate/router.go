package certificate

import (
	"skill-marks-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleCertificate) InitRouter(r *gin.RouterGroup) {
	studentGroup := r.Group("")
	studentGroup.Use(middleware.StudentAuth())
	{
		studentGroup.POST("/upload_certificate", Upload)
	}

	// Viewing is open to the owning student or the admin; the handler checks
	// ownership itself.
	viewGroup := r.Group("")
	viewGroup.Use(middleware.AnySession())
	{
		viewGroup.GET("/view_certificate/:id", View)
	}
}
