package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skathar/portfolio-backend/storage"
)

type UploadController struct {
	Uploader storage.Uploader
}

func NewUploadController(uploader storage.Uploader) *UploadController {
	return &UploadController{Uploader: uploader}
}

// Image uploads a single file and returns its public URL plus the stored
// object, without attaching it to any record.
func (ctl *UploadController) Image(c *gin.Context) {
	file, err := formFile(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if file == nil {
		badRequest(c, "No file uploaded")
		return
	}

	obj, err := ctl.Uploader.Upload(*file, "images")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"url":     obj.URL,
		"file":    obj,
	})
}
