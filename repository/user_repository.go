package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/utils"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create registers an account. Email is case-normalized before the write and
// the unique index decides duplicates.
func (r *UserRepo) Create(email, password string, role models.UserRole) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, validation("email and password are required")
	}
	if role == "" {
		role = models.RoleUser
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, translate(err, "User not found", "User already exists")
	}
	return &user, nil
}

func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err, "User not found", "")
	}
	return &user, nil
}

// FindByID loads an account without its password hash.
func (r *UserRepo) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Select("id", "email", "role", "created_at", "updated_at").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err, "User not found", "")
	}
	return &user, nil
}
