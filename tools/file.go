package tools

import (
	"fmt"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
)

func FileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SendInlineFile streams a stored file for in-browser display rather than as
// a forced download.
func SendInlineFile(c *gin.Context, path string) {
	c.Header("Content-Disposition", "inline")
	c.File(path)
}

// SendAttachmentHeaders sets download headers for a generated file.
func SendAttachmentHeaders(c *gin.Context, displayName, contentType string) {
	escaped := url.QueryEscape(displayName)

	c.Header("Content-Type", contentType)
	c.Header(
		"Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped),
	)
}
