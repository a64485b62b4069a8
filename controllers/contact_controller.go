package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skathar/portfolio-backend/repository"
)

type ContactController struct {
	Messages *repository.MessageRepo
}

func NewContactController(messages *repository.MessageRepo) *ContactController {
	return &ContactController{Messages: messages}
}

// Create accepts a contact-form submission. This is the one unauthenticated
// write in the API.
func (ctl *ContactController) Create(c *gin.Context) {
	var input repository.MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "name, email, and message are required")
		return
	}

	msg, err := ctl.Messages.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Message sent successfully", msg)
}

func (ctl *ContactController) GetAll(c *gin.Context) {
	messages, err := ctl.Messages.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Messages fetched successfully", messages)
}

func (ctl *ContactController) Delete(c *gin.Context) {
	msg, err := ctl.Messages.Delete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Message deleted successfully", msg)
}
