package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skathar/portfolio-backend/repository"
)

type SkillController struct {
	Skills *repository.SkillRepo
}

func NewSkillController(skills *repository.SkillRepo) *SkillController {
	return &SkillController{Skills: skills}
}

func (ctl *SkillController) Create(c *gin.Context) {
	input := repository.SkillInput{
		Name:     c.PostForm("name"),
		Category: c.PostForm("category"),
	}

	icon, err := formFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	skill, err := ctl.Skills.Create(input, icon)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Skill added successfully", skill)
}

func (ctl *SkillController) GetAll(c *gin.Context) {
	skills, err := ctl.Skills.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Skills fetched successfully", skills)
}

func (ctl *SkillController) Update(c *gin.Context) {
	patch := repository.SkillPatch{
		Name:     formString(c, "name"),
		Category: formString(c, "category"),
	}

	icon, err := formFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	skill, err := ctl.Skills.Update(c.Param("id"), patch, icon)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Skill updated successfully", skill)
}

func (ctl *SkillController) Delete(c *gin.Context) {
	skill, err := ctl.Skills.Delete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Skill deleted successfully", skill)
}
