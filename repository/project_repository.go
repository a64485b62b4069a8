package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/storage"
)

const projectFolder = "projects"

type ProjectRepo struct {
	db             *gorm.DB
	uploader       storage.Uploader
	deleteReplaced bool
}

func NewProjectRepo(db *gorm.DB, uploader storage.Uploader, deleteReplaced bool) *ProjectRepo {
	return &ProjectRepo{db: db, uploader: uploader, deleteReplaced: deleteReplaced}
}

type ProjectInput struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Link        string                 `json:"link"`
	Github      string                 `json:"github"`
	BlogLink    string                 `json:"blogLink"`
	Company     string                 `json:"company"`
	Category    models.ProjectCategory `json:"category"`
	TechStack   []string               `json:"techStack"`
	StartDate   *time.Time             `json:"startDate"`
	EndDate     *time.Time             `json:"endDate"`
}

type ProjectPatch struct {
	Title       *string                 `json:"title"`
	Description *string                 `json:"description"`
	Link        *string                 `json:"link"`
	Github      *string                 `json:"github"`
	BlogLink    *string                 `json:"blogLink"`
	Company     *string                 `json:"company"`
	Category    *models.ProjectCategory `json:"category"`
	TechStack   *[]string               `json:"techStack"`
	StartDate   *time.Time              `json:"startDate"`
	EndDate     *time.Time              `json:"endDate"`
}

// Create validates the category enum before any database interaction, so an
// invalid value never leaves a partial write behind.
func (r *ProjectRepo) Create(input ProjectInput, image *storage.File) (*models.Project, error) {
	if input.Title == "" || input.Link == "" {
		return nil, validation("title and link are required")
	}
	if image == nil {
		return nil, validation("image is required")
	}
	if input.Category == "" {
		input.Category = models.CategoryProject
	}
	if !models.ValidProjectCategory(input.Category) {
		return nil, validation("invalid category")
	}

	obj, err := r.uploader.Upload(*image, projectFolder)
	if err != nil {
		return nil, err
	}

	project := models.Project{
		Title:       input.Title,
		Description: input.Description,
		Image:       obj.URL,
		Link:        input.Link,
		Github:      input.Github,
		BlogLink:    input.BlogLink,
		Company:     input.Company,
		Category:    input.Category,
		TechStack:   input.TechStack,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if err := r.db.Create(&project).Error; err != nil {
		return nil, translate(err, "Project not found", "")
	}
	return &project, nil
}

func (r *ProjectRepo) GetAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepo) GetByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, translate(err, "Project not found", "")
	}
	return &project, nil
}

func (r *ProjectRepo) Update(id string, patch ProjectPatch, image *storage.File) (*models.Project, error) {
	if patch.Category != nil && !models.ValidProjectCategory(*patch.Category) {
		return nil, validation("invalid category")
	}

	var project models.Project
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, translate(err, "Project not found", "")
	}

	apply(&project.Title, patch.Title)
	apply(&project.Description, patch.Description)
	apply(&project.Link, patch.Link)
	apply(&project.Github, patch.Github)
	apply(&project.BlogLink, patch.BlogLink)
	apply(&project.Company, patch.Company)
	apply(&project.Category, patch.Category)
	apply(&project.TechStack, patch.TechStack)
	if patch.StartDate != nil {
		project.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		project.EndDate = patch.EndDate
	}

	oldImage := project.Image
	if image != nil {
		obj, err := r.uploader.Upload(*image, projectFolder)
		if err != nil {
			return nil, err
		}
		project.Image = obj.URL
	}

	if err := r.db.Save(&project).Error; err != nil {
		return nil, translate(err, "Project not found", "")
	}

	if image != nil && r.deleteReplaced {
		removeBlobURL(r.uploader, oldImage)
	}
	return &project, nil
}

func (r *ProjectRepo) Delete(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, translate(err, "Project not found", "")
	}
	if err := r.db.Delete(&project).Error; err != nil {
		return nil, err
	}
	if r.deleteReplaced {
		removeBlobURL(r.uploader, project.Image)
	}
	return &project, nil
}
