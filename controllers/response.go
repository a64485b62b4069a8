// Package controllers binds HTTP routes to the repositories. Every response
// uses the same envelope: {success, message, data?, error?}.
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skathar/portfolio-backend/repository"
	"github.com/skathar/portfolio-backend/storage"
)

func respond(c *gin.Context, status int, message string, data any) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError maps a repository or storage error onto the envelope with the
// right status code. Unexpected errors keep a generic message; the upstream
// detail goes into the error field for diagnostics.
func respondError(c *gin.Context, err error) {
	var repoErr *repository.Error
	if errors.As(err, &repoErr) {
		status := http.StatusBadRequest
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"success": false,
			"message": repoErr.Message,
			"error":   repoErr.Kind.Error(),
		})
		return
	}

	if errors.Is(err, storage.ErrUploadFailed) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Upload failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Internal Server Error",
		"error":   err.Error(),
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}

// parseDate accepts the two date shapes the admin UI sends.
func parseDate(s string) (*time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("invalid date: " + s)
}
