package response

import (
	"errors"
	"fmt"
	"net/http"

	"skill-marks-system/config"
	"skill-marks-system/internal/global/flash"
	"skill-marks-system/internal/global/session"

	"github.com/gin-gonic/gin"
)

// ResponseBody is the JSON envelope for view endpoints.
type ResponseBody struct {
	Code int32       `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// Success renders a JSON success envelope.
func Success(c *gin.Context, data ...interface{}) {
	body := ResponseBody{Code: 200, Msg: "OK"}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail renders a JSON failure envelope. The origin chain is only exposed in
// debug mode; clients never see stack traces in release mode.
func Fail(c *gin.Context, err error) {
	e := asError(err)
	body := ResponseBody{Code: e.Code, Msg: e.Message}
	if config.Get().Mode == config.ModeDebug && e.Origin != "" {
		body.Data = gin.H{"origin": e.Origin}
	}
	c.JSON(http.StatusOK, body)
}

// Redirect issues a 302 to location, queueing any messages as flash for the
// caller's session so the next page render can show them.
func Redirect(c *gin.Context, location string, messages ...string) {
	if claims, ok := session.FromContext(c); ok && claims.SID != "" {
		flash.Get().Push(claims.SID, messages...)
	}
	c.Redirect(http.StatusFound, location)
}

// FailRedirect translates an error into a flash message and redirects. This is
// the single place workflow handlers convert failures into user-visible output.
func FailRedirect(c *gin.Context, location string, err error) {
	Redirect(c, location, asError(err).Message)
}

// Recovery converts a panic into the generic internal error response. Used
// deferred by the recovery middleware.
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", r)
		}
		Fail(c, ErrInternal.WithOrigin(err))
		c.Abort()
	}
}

func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ErrInternal.WithOrigin(err)
}
