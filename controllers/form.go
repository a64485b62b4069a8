package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/skathar/portfolio-backend/storage"
)

// fileField is the multipart field name every upload route uses.
const fileField = "file"

// formFile decodes the optional upload out of the multipart body. A missing
// file is not an error; callers that require one check for nil.
func formFile(c *gin.Context) (*storage.File, error) {
	fh, err := c.FormFile(fileField)
	if err != nil {
		return nil, nil
	}
	return storage.FromMultipart(fh)
}

// formString reports a form value together with its presence, so partial
// updates can tell "absent" from "empty".
func formString(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

// formStrings returns a repeated form value, or nil when the key was absent.
func formStrings(c *gin.Context, key string) *[]string {
	if vs, ok := c.GetPostFormArray(key); ok {
		return &vs
	}
	return nil
}
