package repository

import (
	"gorm.io/gorm"

	"github.com/skathar/portfolio-backend/models"
)

// MessageRepo stores contact-form submissions. Messages are append-only:
// there is no update path, only admin listing and deletion.
type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *MessageRepo) Create(input MessageInput) (*models.Message, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, validation("name, email, and message are required")
	}

	msg := models.Message{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := r.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *MessageRepo) GetAll() ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepo) Delete(id string) (*models.Message, error) {
	var msg models.Message
	if err := r.db.Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, translate(err, "Message not found", "")
	}
	if err := r.db.Delete(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}
