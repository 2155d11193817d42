package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses a numeric id path parameter
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// postFormAlias returns the first non-empty form value among the accepted
// field names.
func postFormAlias(c *gin.Context, names ...string) string {
	for _, name := range names {
		if value := c.PostForm(name); value != "" {
			return value
		}
	}
	return ""
}

// formFiles returns the uploaded files of a multipart request keyed by field
// name. A request without a multipart body yields an empty map.
func formFiles(c *gin.Context) map[string][]*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return map[string][]*multipart.FileHeader{}
	}
	return form.File
}
