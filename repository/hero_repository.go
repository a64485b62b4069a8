package repository

import (
	"gorm.io/gorm"

	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/storage"
)

const resumeFolder = "resumes"

type HeroRepo struct {
	db       *gorm.DB
	uploader storage.Uploader
	// deleteReplaced removes the previous resume object when a new one is
	// uploaded or the hero row is deleted.
	deleteReplaced bool
}

func NewHeroRepo(db *gorm.DB, uploader storage.Uploader, deleteReplaced bool) *HeroRepo {
	return &HeroRepo{db: db, uploader: uploader, deleteReplaced: deleteReplaced}
}

// HeroInput is the decoded create payload; the resume file travels separately.
type HeroInput struct {
	Name         string             `json:"name"`
	Titles       []string           `json:"titles"`
	About        string             `json:"about"`
	Education    string             `json:"education"`
	Educations   []models.Education `json:"educations"`
	ProfileImage models.FileRef     `json:"profileImage"`
	Location     string             `json:"location"`
	SocialLinks  models.SocialLinks `json:"socialLinks"`
	MusicEnabled bool               `json:"musicEnabled"`
}

// HeroPatch carries only the fields to change. Educations replaces the whole
// embedded list when present.
type HeroPatch struct {
	Name         *string             `json:"name"`
	Titles       *[]string           `json:"titles"`
	About        *string             `json:"about"`
	Education    *string             `json:"education"`
	Educations   *[]models.Education `json:"educations"`
	ProfileImage *models.FileRef     `json:"profileImage"`
	Location     *string             `json:"location"`
	SocialLinks  *models.SocialLinks `json:"socialLinks"`
	MusicEnabled *bool               `json:"musicEnabled"`
}

func (r *HeroRepo) Create(input HeroInput, resume *storage.File) (*models.Hero, error) {
	hero := models.Hero{
		Name:         input.Name,
		Titles:       input.Titles,
		About:        input.About,
		Education:    input.Education,
		Educations:   input.Educations,
		ProfileImage: input.ProfileImage,
		Location:     input.Location,
		SocialLinks:  input.SocialLinks,
		MusicEnabled: input.MusicEnabled,
	}

	if resume != nil {
		obj, err := r.uploader.Upload(*resume, resumeFolder)
		if err != nil {
			return nil, err
		}
		hero.Resume = models.FileRef{URL: obj.URL, Path: obj.Path}
	}

	if err := r.db.Create(&hero).Error; err != nil {
		return nil, translate(err, "Hero not found", "")
	}
	return &hero, nil
}

// GetCurrent resolves "the" hero: the most recently created row.
func (r *HeroRepo) GetCurrent() (*models.Hero, error) {
	var hero models.Hero
	if err := r.db.Order("created_at DESC").First(&hero).Error; err != nil {
		return nil, translate(err, "Hero not found", "")
	}
	return &hero, nil
}

func (r *HeroRepo) GetAll() ([]models.Hero, error) {
	var heroes []models.Hero
	if err := r.db.Order("created_at DESC").Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *HeroRepo) Update(id string, patch HeroPatch, resume *storage.File) (*models.Hero, error) {
	var hero models.Hero
	if err := r.db.Where("id = ?", id).First(&hero).Error; err != nil {
		return nil, translate(err, "Hero not found", "")
	}

	apply(&hero.Name, patch.Name)
	apply(&hero.Titles, patch.Titles)
	apply(&hero.About, patch.About)
	apply(&hero.Education, patch.Education)
	apply(&hero.Educations, patch.Educations)
	apply(&hero.ProfileImage, patch.ProfileImage)
	apply(&hero.Location, patch.Location)
	apply(&hero.SocialLinks, patch.SocialLinks)
	apply(&hero.MusicEnabled, patch.MusicEnabled)

	oldResume := hero.Resume
	if resume != nil {
		obj, err := r.uploader.Upload(*resume, resumeFolder)
		if err != nil {
			return nil, err
		}
		hero.Resume = models.FileRef{URL: obj.URL, Path: obj.Path}
	}

	if err := r.db.Save(&hero).Error; err != nil {
		return nil, translate(err, "Hero not found", "")
	}

	if resume != nil && r.deleteReplaced && oldResume.Path != "" {
		removeBlobPath(r.uploader, oldResume.Path)
	}
	return &hero, nil
}

func (r *HeroRepo) Delete(id string) (*models.Hero, error) {
	var hero models.Hero
	if err := r.db.Where("id = ?", id).First(&hero).Error; err != nil {
		return nil, translate(err, "Hero not found", "")
	}
	if err := r.db.Delete(&hero).Error; err != nil {
		return nil, err
	}
	if r.deleteReplaced && hero.Resume.Path != "" {
		removeBlobPath(r.uploader, hero.Resume.Path)
	}
	return &hero, nil
}

// RemoveTitle filters one title out of the hero's list. Removing a title that
// is not present is a no-op, not an error.
func (r *HeroRepo) RemoveTitle(heroID, title string) (*models.Hero, error) {
	var hero models.Hero
	if err := r.db.Where("id = ?", heroID).First(&hero).Error; err != nil {
		return nil, translate(err, "Hero not found", "")
	}

	titles := make([]string, 0, len(hero.Titles))
	for _, t := range hero.Titles {
		if t != title {
			titles = append(titles, t)
		}
	}
	hero.Titles = titles

	if err := r.db.Save(&hero).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}
