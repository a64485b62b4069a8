package repository

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/storage"
)

const blogFolder = "blogs"

const blogConflictMsg = "Blog with this title already exists"

type BlogRepo struct {
	db             *gorm.DB
	uploader       storage.Uploader
	deleteReplaced bool
}

func NewBlogRepo(db *gorm.DB, uploader storage.Uploader, deleteReplaced bool) *BlogRepo {
	return &BlogRepo{db: db, uploader: uploader, deleteReplaced: deleteReplaced}
}

type BlogInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

type BlogPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
	Category    *string `json:"category"`
}

// Create inserts a blog. A missing title gets a generated unique one; a
// duplicate title is rejected by the unique index and reported as a conflict,
// distinct from other validation failures.
func (r *BlogRepo) Create(input BlogInput, image *storage.File) (*models.Blog, error) {
	title := input.Title
	if title == "" {
		title = fmt.Sprintf("Blog %d", time.Now().UnixMilli())
	}
	category := input.Category
	if category == "" {
		category = "general"
	}

	blog := models.Blog{
		Title:       title,
		Slug:        slug.Make(title),
		Description: input.Description,
		Link:        input.Link,
		Category:    category,
	}

	if image != nil {
		obj, err := r.uploader.Upload(*image, blogFolder)
		if err != nil {
			return nil, err
		}
		blog.Image = obj.URL
	}

	if err := r.db.Create(&blog).Error; err != nil {
		return nil, translate(err, "Blog not found", blogConflictMsg)
	}
	return &blog, nil
}

func (r *BlogRepo) GetAll() ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *BlogRepo) GetByID(id string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.Where("id = ?", id).First(&blog).Error; err != nil {
		return nil, translate(err, "Blog not found", "")
	}
	return &blog, nil
}

func (r *BlogRepo) Update(id string, patch BlogPatch, image *storage.File) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.Where("id = ?", id).First(&blog).Error; err != nil {
		return nil, translate(err, "Blog not found", "")
	}

	apply(&blog.Title, patch.Title)
	apply(&blog.Description, patch.Description)
	apply(&blog.Link, patch.Link)
	apply(&blog.Category, patch.Category)
	if patch.Title != nil {
		blog.Slug = slug.Make(*patch.Title)
	}

	oldImage := blog.Image
	if image != nil {
		obj, err := r.uploader.Upload(*image, blogFolder)
		if err != nil {
			return nil, err
		}
		blog.Image = obj.URL
	}

	if err := r.db.Save(&blog).Error; err != nil {
		return nil, translate(err, "Blog not found", blogConflictMsg)
	}

	if image != nil && r.deleteReplaced {
		removeBlobURL(r.uploader, oldImage)
	}
	return &blog, nil
}

func (r *BlogRepo) Delete(id string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.Where("id = ?", id).First(&blog).Error; err != nil {
		return nil, translate(err, "Blog not found", "")
	}
	if err := r.db.Delete(&blog).Error; err != nil {
		return nil, err
	}
	if r.deleteReplaced {
		removeBlobURL(r.uploader, blog.Image)
	}
	return &blog, nil
}
