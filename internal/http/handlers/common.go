package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// pageParams reads page/pageSize query parameters. Absent values default to
// the first page of ten; malformed values become -1 so the pagination
// validator rejects them.
func pageParams(c *gin.Context) (int, int) {
	return intQuery(c, "page", 1), intQuery(c, "pageSize", 10)
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}

// idParam parses the :id path segment. On failure it writes the 400
// response itself and reports false.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.String(http.StatusBadRequest, "Invalid id.")
		return 0, false
	}
	return id, true
}

// bindJSON ensures the body is present and parsable, writing the 400
// response itself on failure.
func bindJSON[T any](c *gin.Context, dst *T) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.String(http.StatusBadRequest, "Invalid request payload.")
		return false
	}
	return true
}

// exportFilename builds the attachment name for export downloads,
// e.g. "Flights-20240501083000.pdf".
func exportFilename(entity, ext string) string {
	return fmt.Sprintf("%s-%s.%s", entity, time.Now().Format("20060102150405"), ext)
}

func sendAttachment(c *gin.Context, data []byte, contentType, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
