package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/repository"
)

type HeroController struct {
	Heroes *repository.HeroRepo
}

func NewHeroController(heroes *repository.HeroRepo) *HeroController {
	return &HeroController{Heroes: heroes}
}

// Create adds a hero profile from a multipart form. The resume arrives in the
// "file" field; structured fields (educations, socialLinks, profileImage)
// arrive JSON-encoded.
func (ctl *HeroController) Create(c *gin.Context) {
	input := repository.HeroInput{
		Name:         c.PostForm("name"),
		Titles:       c.PostFormArray("titles"),
		About:        c.PostForm("about"),
		Education:    c.PostForm("education"),
		Location:     c.PostForm("location"),
		MusicEnabled: c.PostForm("musicEnabled") == "true",
	}
	if err := decodeJSONField(c, "educations", &input.Educations); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := decodeJSONField(c, "socialLinks", &input.SocialLinks); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := decodeJSONField(c, "profileImage", &input.ProfileImage); err != nil {
		badRequest(c, err.Error())
		return
	}

	resume, err := formFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	hero, err := ctl.Heroes.Create(input, resume)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Hero created successfully", hero)
}

// GetCurrent returns the latest hero, the one the public site renders.
func (ctl *HeroController) GetCurrent(c *gin.Context) {
	hero, err := ctl.Heroes.GetCurrent()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Hero fetched successfully", hero)
}

func (ctl *HeroController) GetAll(c *gin.Context) {
	heroes, err := ctl.Heroes.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "All heroes fetched successfully", heroes)
}

// Update applies a partial update; only fields present in the form change.
// A new resume file replaces the stored one.
func (ctl *HeroController) Update(c *gin.Context) {
	patch := repository.HeroPatch{
		Name:      formString(c, "name"),
		About:     formString(c, "about"),
		Education: formString(c, "education"),
		Location:  formString(c, "location"),
		Titles:    formStrings(c, "titles"),
	}
	if v, ok := c.GetPostForm("musicEnabled"); ok {
		enabled := v == "true"
		patch.MusicEnabled = &enabled
	}
	if _, ok := c.GetPostForm("educations"); ok {
		var educations []models.Education
		if err := decodeJSONField(c, "educations", &educations); err != nil {
			badRequest(c, err.Error())
			return
		}
		patch.Educations = &educations
	}
	if _, ok := c.GetPostForm("socialLinks"); ok {
		var links models.SocialLinks
		if err := decodeJSONField(c, "socialLinks", &links); err != nil {
			badRequest(c, err.Error())
			return
		}
		patch.SocialLinks = &links
	}
	if _, ok := c.GetPostForm("profileImage"); ok {
		var ref models.FileRef
		if err := decodeJSONField(c, "profileImage", &ref); err != nil {
			badRequest(c, err.Error())
			return
		}
		patch.ProfileImage = &ref
	}

	resume, err := formFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	hero, err := ctl.Heroes.Update(c.Param("id"), patch, resume)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Hero updated successfully", hero)
}

func (ctl *HeroController) Delete(c *gin.Context) {
	hero, err := ctl.Heroes.Delete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Hero deleted successfully", hero)
}

type removeTitleInput struct {
	HeroID string `json:"heroId" binding:"required"`
	Title  string `json:"title" binding:"required"`
}

// RemoveTitle drops one title from a hero's list. Removing an absent title
// succeeds without changing anything.
func (ctl *HeroController) RemoveTitle(c *gin.Context) {
	var input removeTitleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "heroId and title are required")
		return
	}

	hero, err := ctl.Heroes.RemoveTitle(input.HeroID, input.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Title removed successfully", hero)
}

// DownloadResume streams the current hero's resume as a PDF attachment.
func (ctl *HeroController) DownloadResume(c *gin.Context) {
	hero, err := ctl.Heroes.GetCurrent()
	if err != nil || hero.Resume.URL == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Resume not found",
		})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, hero.Resume.URL, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		respondError(c, err)
		return
	}
	defer resp.Body.Close()

	name := hero.Name
	if name == "" {
		name = "resume"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, name))
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	io.Copy(c.Writer, resp.Body)
}

// decodeJSONField parses a JSON-encoded multipart field into dst; an absent
// or empty field is left alone.
func decodeJSONField(c *gin.Context, key string, dst any) error {
	raw := c.PostForm(key)
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("invalid %s: %v", key, err)
	}
	return nil
}
