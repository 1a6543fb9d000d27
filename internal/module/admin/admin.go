package admin

import (
	"net/http"
	"strconv"

	"skill-marks-system/internal/global/database"
	"skill-marks-system/internal/global/flash"
	"skill-marks-system/internal/global/response"
	"skill-marks-system/internal/global/session"
	"skill-marks-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Hardcoded single-admin credential pair, compared by plain string equality.
// Kept for behavioral parity with the system being replaced; integrators must
// not ship this unchanged.
const (
	adminUsername = "facultycse"
	adminPassword = "facultycse123"
)

func loginView(c *gin.Context, messages ...string) {
	if messages == nil {
		messages = []string{}
	}
	response.Success(c, gin.H{
		"page":     "admin_login",
		"messages": messages,
	})
}

// LoginPage shows the admin login form.
func LoginPage(c *gin.Context) {
	var messages []string
	if claims, ok := session.FromCookie(c); ok {
		messages = flash.Get().Pop(claims.SID)
	}
	loginView(c, messages...)
}

// Login checks the hardcoded admin credential pair.
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username != adminUsername || password != adminPassword {
		log.Warn("admin login failed", "username", username)
		loginView(c, "Invalid admin credentials")
		return
	}

	claims := session.NewAdmin()
	session.SetCookie(c, claims)
	c.Set(session.PayloadKey, claims)

	log.Info("admin logged in")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout clears the admin session.
func Logout(c *gin.Context) {
	session.ClearCookie(c)
	c.Redirect(http.StatusFound, "/admin")
}

// reviewRow is a certificate pending review with owner and event context
// joined in for display.
type reviewRow struct {
	model.Certificate
	Username    string `json:"username"`
	Description string `json:"description"`
	MaxMarks    int    `json:"max_marks"`
}

// Dashboard lists certificates with approved=false. Note this deliberately
// includes rejected ones, matching the replaced system's review queue.
func Dashboard(c *gin.Context) {
	claims, _ := session.FromContext(c)

	var certs []model.Certificate
	if err := database.DB.
		Preload("Student").
		Preload("Event").
		Where("approved = ?", false).
		Find(&certs).Error; err != nil {
		log.Error("load pending certificates failed", "error", err)
		response.FailRedirect(c, "/admin", response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]reviewRow, 0, len(certs))
	for _, cert := range certs {
		rows = append(rows, reviewRow{
			Certificate: cert,
			Username:    cert.Student.Username,
			Description: cert.Event.Description,
			MaxMarks:    cert.Event.MaxMarks,
		})
	}

	var messages []string
	if claims != nil {
		messages = flash.Get().Pop(claims.SID)
	}
	if messages == nil {
		messages = []string{}
	}

	response.Success(c, gin.H{
		"certificates": rows,
		"messages":     messages,
	})
}

// Approve transitions a certificate to approved and credits the owning
// student with the event's max marks, in one transaction. The conditional
// update is the re-approval guard: a certificate can only move to approved
// once, so concurrent or repeated approvals cannot double-credit the student.
func Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Redirect(c, "/admin/dashboard", "Certificate not found")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var cert model.Certificate
		if err := tx.First(&cert, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrNotFound.WithTips("Certificate not found")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		var event model.Event
		if err := tx.First(&event, cert.EventID).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		res := tx.Model(&model.Certificate{}).
			Where("id = ? AND approved = ?", cert.ID, false).
			Updates(map[string]interface{}{
				"approved":        true,
				"status":          model.StatusApproved,
				"marks_allocated": event.MaxMarks,
			})
		if res.Error != nil {
			return response.ErrDatabase.WithOrigin(res.Error)
		}
		if res.RowsAffected == 0 {
			return response.ErrAlreadyApproved
		}

		if err := tx.Model(&model.Student{}).
			Where("id = ?", cert.StudentID).
			UpdateColumn("total_marks", gorm.Expr("total_marks + ?", event.MaxMarks)).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		log.Info("certificate approved",
			"certificate_id", cert.ID,
			"student_id", cert.StudentID,
			"marks", event.MaxMarks)
		return nil
	})
	if err != nil {
		response.FailRedirect(c, "/admin/dashboard", err)
		return
	}

	response.Redirect(c, "/admin/dashboard", "Certificate approved and marks allocated!")
}

// Reject marks a certificate rejected with zero marks. Rejecting a previously
// approved certificate does not subtract the earlier credit from the
// student's total; that asymmetry is inherited behavior, kept deliberately.
func Reject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Redirect(c, "/admin/dashboard", "Certificate not found")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var cert model.Certificate
		if err := tx.First(&cert, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrNotFound.WithTips("Certificate not found")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		if err := tx.Model(&model.Certificate{}).
			Where("id = ?", cert.ID).
			Updates(map[string]interface{}{
				"approved":        false,
				"status":          model.StatusRejected,
				"marks_allocated": 0,
			}).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		log.Info("certificate rejected", "certificate_id", cert.ID, "student_id", cert.StudentID)
		return nil
	})
	if err != nil {
		response.FailRedirect(c, "/admin/dashboard", err)
		return
	}

	response.Redirect(c, "/admin/dashboard", "Certificate rejected!")
}
