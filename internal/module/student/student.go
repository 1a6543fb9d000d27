package student

import (
	"net/http"
	"strings"

	"skill-marks-system/internal/global/database"
	"skill-marks-system/internal/global/flash"
	"skill-marks-system/internal/global/response"
	"skill-marks-system/internal/global/session"
	"skill-marks-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// loginView renders the login page payload. Failure messages are rendered
// inline because no session exists yet to carry flash state.
func loginView(c *gin.Context, messages ...string) {
	if messages == nil {
		messages = []string{}
	}
	response.Success(c, gin.H{
		"page":     "login",
		"messages": messages,
	})
}

// LoginPage shows the student login form, with any pending flash messages.
func LoginPage(c *gin.Context) {
	var messages []string
	if claims, ok := session.FromCookie(c); ok {
		messages = flash.Get().Pop(claims.SID)
	}
	loginView(c, messages...)
}

// Login checks a student credential pair. The password is compared after
// lowercasing against the stored plain string, matching the seeded scheme.
// Failures deliberately do not distinguish unknown user from wrong password.
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		loginView(c, response.ErrInvalidCredentials.Message)
		return
	}

	var student model.Student
	err := database.DB.
		Where("username = ? AND password = ?", username, strings.ToLower(password)).
		First(&student).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("login failed", "username", username)
		loginView(c, response.ErrInvalidCredentials.Message)
		return
	case err != nil:
		log.Error("login query failed", "error", err, "username", username)
		loginView(c, response.ErrDatabase.Message)
		return
	}

	claims := session.NewStudent(student.ID, student.Username)
	session.SetCookie(c, claims)
	c.Set(session.PayloadKey, claims)

	log.Info("student logged in", "username", student.Username)
	response.Redirect(c, "/dashboard", "Login successful!")
}

// Dashboard renders the student home: identity and total, the full event
// catalog, the student's own certificates, and pending messages.
func Dashboard(c *gin.Context) {
	claims, ok := session.FromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var student model.Student
	err := database.DB.First(&student, claims.StudentID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Stale session for a student that no longer exists.
		session.ClearCookie(c)
		c.Redirect(http.StatusFound, "/login")
		return
	case err != nil:
		log.Error("load student failed", "error", err, "student_id", claims.StudentID)
		response.Redirect(c, "/login", response.ErrDatabase.Message)
		return
	}

	var events []model.Event
	if err := database.DB.Find(&events).Error; err != nil {
		log.Error("load events failed", "error", err)
		response.Redirect(c, "/login", response.ErrDatabase.Message)
		return
	}

	var certificates []model.Certificate
	if err := database.DB.Where("student_id = ?", student.ID).Find(&certificates).Error; err != nil {
		log.Error("load certificates failed", "error", err, "student_id", student.ID)
		response.Redirect(c, "/login", response.ErrDatabase.Message)
		return
	}

	messages := flash.Get().Pop(claims.SID)
	if messages == nil {
		messages = []string{}
	}

	response.Success(c, gin.H{
		"student":      student,
		"events":       events,
		"certificates": certificates,
		"messages":     messages,
	})
}

// Logout drops the student's identity. The replacement cookie is anonymous
// but keeps the session id, so the goodbye message can be flashed on the
// login page after the redirect.
func Logout(c *gin.Context) {
	var sid string
	if claims, ok := session.FromCookie(c); ok {
		sid = claims.SID
	}

	anon := session.NewAnonymous(sid)
	session.SetCookie(c, anon)
	flash.Get().Push(anon.SID, "You have been logged out")
	c.Redirect(http.StatusFound, "/login")
}
