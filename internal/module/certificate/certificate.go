package certificate

import (
	"net/http"
	"strconv"
	"time"

	"skill-marks-system/config"
	"skill-marks-system/internal/classify"
	"skill-marks-system/internal/global/database"
	"skill-marks-system/internal/global/filestore"
	"skill-marks-system/internal/global/response"
	"skill-marks-system/internal/global/session"
	"skill-marks-system/internal/model"
	"skill-marks-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Upload accepts a multipart certificate upload against a catalog event. The
// classification verdict only populates the remark; it never blocks the upload
// or pre-decides the review. Every failure redirects back to the dashboard
// with a message and leaves no partial record behind.
func Upload(c *gin.Context) {
	claims, ok := session.FromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	cfg := config.Get()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.Upload.MaxSize)

	fileHeader, err := c.FormFile("certificate")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Redirect(c, "/dashboard", "File is too large")
			return
		}
		response.Redirect(c, "/dashboard", "No file selected")
		return
	}
	if fileHeader.Filename == "" {
		response.Redirect(c, "/dashboard", "No file selected")
		return
	}

	filename := filestore.SanitizeFilename(fileHeader.Filename)
	if filename == "" {
		response.Redirect(c, "/dashboard", "No file selected")
		return
	}

	eventID, err := strconv.ParseUint(c.PostForm("event_id"), 10, 64)
	if err != nil {
		response.Redirect(c, "/dashboard", "Invalid event selected")
		return
	}

	var event model.Event
	err = database.DB.First(&event, eventID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Redirect(c, "/dashboard", "Invalid event selected")
		return
	case err != nil:
		log.Error("load event failed", "error", err, "event_id", eventID)
		response.FailRedirect(c, "/dashboard", response.ErrDatabase.WithOrigin(err))
		return
	}

	store := filestore.New(cfg.Upload.Dir)
	if _, err := store.Save(fileHeader); err != nil {
		log.Error("save file failed", "error", err, "filename", filename)
		response.FailRedirect(c, "/dashboard", response.ErrFileStore.WithOrigin(err))
		return
	}

	_, remarks := classify.Analyze(filename, event.Description)

	cert := model.Certificate{
		StudentID:      claims.StudentID,
		EventID:        event.ID,
		Filename:       filename,
		UploadDate:     time.Now().UTC(),
		Status:         model.StatusPending,
		MarksAllocated: 0,
		Remarks:        remarks,
		Approved:       false,
	}
	if err := database.DB.Create(&cert).Error; err != nil {
		log.Error("create certificate failed", "error", err, "student_id", claims.StudentID)
		response.FailRedirect(c, "/dashboard", response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("certificate uploaded",
		"certificate_id", cert.ID,
		"student_id", claims.StudentID,
		"event_id", event.ID,
		"filename", filename)

	response.Redirect(c, "/dashboard", "Certificate uploaded successfully! Pending admin approval.")
}

// View streams a stored certificate file inline. A student may only view
// their own certificates; the admin may view any. Authorization failures and
// missing records both resolve to a redirect with a message, not a bare
// status error.
func View(c *gin.Context) {
	claims, ok := session.FromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	home := "/dashboard"
	if claims.Admin {
		home = "/admin/dashboard"
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Redirect(c, home, "Certificate not found")
		return
	}

	var cert model.Certificate
	err = database.DB.First(&cert, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Redirect(c, home, "Certificate not found")
		return
	case err != nil:
		log.Error("load certificate failed", "error", err, "certificate_id", id)
		response.FailRedirect(c, home, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !claims.Admin && cert.StudentID != claims.StudentID {
		log.Warn("certificate access denied",
			"certificate_id", cert.ID,
			"owner_id", cert.StudentID,
			"student_id", claims.StudentID)
		response.FailRedirect(c, home, response.ErrForbidden)
		return
	}

	store := filestore.New(config.Get().Upload.Dir)
	if !store.Exists(cert.Filename) {
		response.Redirect(c, home, "Certificate file not found")
		return
	}

	tools.SendInlineFile(c, store.Path(cert.Filename))
}
