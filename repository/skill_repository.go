package repository

import (
	"gorm.io/gorm"

	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/storage"
)

const skillFolder = "skills"

const skillConflictMsg = "Skill already exists"

type SkillRepo struct {
	db             *gorm.DB
	uploader       storage.Uploader
	deleteReplaced bool
}

func NewSkillRepo(db *gorm.DB, uploader storage.Uploader, deleteReplaced bool) *SkillRepo {
	return &SkillRepo{db: db, uploader: uploader, deleteReplaced: deleteReplaced}
}

type SkillInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type SkillPatch struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

// Create inserts a skill. Name uniqueness is decided by the index alone; a
// concurrent duplicate insert loses with a conflict, never a plain 500.
func (r *SkillRepo) Create(input SkillInput, icon *storage.File) (*models.Skill, error) {
	if input.Name == "" || input.Category == "" {
		return nil, validation("name and category are required")
	}
	if icon == nil {
		return nil, validation("icon is required")
	}

	obj, err := r.uploader.Upload(*icon, skillFolder)
	if err != nil {
		return nil, err
	}

	skill := models.Skill{
		Name:     input.Name,
		Icon:     obj.URL,
		Category: input.Category,
	}
	if err := r.db.Create(&skill).Error; err != nil {
		return nil, translate(err, "Skill not found", skillConflictMsg)
	}
	return &skill, nil
}

func (r *SkillRepo) GetAll() ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *SkillRepo) Update(id string, patch SkillPatch, icon *storage.File) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, translate(err, "Skill not found", "")
	}

	apply(&skill.Name, patch.Name)
	apply(&skill.Category, patch.Category)

	oldIcon := skill.Icon
	if icon != nil {
		obj, err := r.uploader.Upload(*icon, skillFolder)
		if err != nil {
			return nil, err
		}
		skill.Icon = obj.URL
	}

	if err := r.db.Save(&skill).Error; err != nil {
		return nil, translate(err, "Skill not found", skillConflictMsg)
	}

	if icon != nil && r.deleteReplaced {
		removeBlobURL(r.uploader, oldIcon)
	}
	return &skill, nil
}

func (r *SkillRepo) Delete(id string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, translate(err, "Skill not found", "")
	}
	if err := r.db.Delete(&skill).Error; err != nil {
		return nil, err
	}
	if r.deleteReplaced {
		removeBlobURL(r.uploader, skill.Icon)
	}
	return &skill, nil
}
