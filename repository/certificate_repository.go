package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/storage"
)

const certificateFolder = "certificates"

type CertificateRepo struct {
	db             *gorm.DB
	uploader       storage.Uploader
	deleteReplaced bool
}

func NewCertificateRepo(db *gorm.DB, uploader storage.Uploader, deleteReplaced bool) *CertificateRepo {
	return &CertificateRepo{db: db, uploader: uploader, deleteReplaced: deleteReplaced}
}

type CertificateInput struct {
	Title       string     `json:"title"`
	Issuer      string     `json:"issuer"`
	Date        *time.Time `json:"date"`
	Description string     `json:"description"`
	Link        string     `json:"link"`
	Category    string     `json:"category"`
}

type CertificatePatch struct {
	Title       *string    `json:"title"`
	Issuer      *string    `json:"issuer"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
	Link        *string    `json:"link"`
	Category    *string    `json:"category"`
}

func (r *CertificateRepo) Create(input CertificateInput, image *storage.File) (*models.Certificate, error) {
	if input.Title == "" || input.Issuer == "" {
		return nil, validation("title and issuer are required")
	}
	if image == nil {
		return nil, validation("image is required")
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}
	category := input.Category
	if category == "" {
		category = "general"
	}

	obj, err := r.uploader.Upload(*image, certificateFolder)
	if err != nil {
		return nil, err
	}

	cert := models.Certificate{
		Title:       input.Title,
		Image:       obj.URL,
		Issuer:      input.Issuer,
		Date:        date,
		Description: input.Description,
		Link:        input.Link,
		Category:    category,
	}
	if err := r.db.Create(&cert).Error; err != nil {
		return nil, translate(err, "Certificate not found", "")
	}
	return &cert, nil
}

func (r *CertificateRepo) GetAll() ([]models.Certificate, error) {
	var certs []models.Certificate
	if err := r.db.Order("created_at DESC").Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *CertificateRepo) GetByID(id string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := r.db.Where("id = ?", id).First(&cert).Error; err != nil {
		return nil, translate(err, "Certificate not found", "")
	}
	return &cert, nil
}

func (r *CertificateRepo) Update(id string, patch CertificatePatch, image *storage.File) (*models.Certificate, error) {
	var cert models.Certificate
	if err := r.db.Where("id = ?", id).First(&cert).Error; err != nil {
		return nil, translate(err, "Certificate not found", "")
	}

	apply(&cert.Title, patch.Title)
	apply(&cert.Issuer, patch.Issuer)
	apply(&cert.Date, patch.Date)
	apply(&cert.Description, patch.Description)
	apply(&cert.Link, patch.Link)
	apply(&cert.Category, patch.Category)

	oldImage := cert.Image
	if image != nil {
		obj, err := r.uploader.Upload(*image, certificateFolder)
		if err != nil {
			return nil, err
		}
		cert.Image = obj.URL
	}

	if err := r.db.Save(&cert).Error; err != nil {
		return nil, translate(err, "Certificate not found", "")
	}

	if image != nil && r.deleteReplaced {
		removeBlobURL(r.uploader, oldImage)
	}
	return &cert, nil
}

func (r *CertificateRepo) Delete(id string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := r.db.Where("id = ?", id).First(&cert).Error; err != nil {
		return nil, translate(err, "Certificate not found", "")
	}
	if err := r.db.Delete(&cert).Error; err != nil {
		return nil, err
	}
	if r.deleteReplaced {
		removeBlobURL(r.uploader, cert.Image)
	}
	return &cert, nil
}
