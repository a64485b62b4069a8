package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/repository"
)

type ProjectController struct {
	Projects *repository.ProjectRepo
}

func NewProjectController(projects *repository.ProjectRepo) *ProjectController {
	return &ProjectController{Projects: projects}
}

func (ctl *ProjectController) Create(c *gin.Context) {
	input := repository.ProjectInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Link:        c.PostForm("link"),
		Github:      c.PostForm("github"),
		BlogLink:    c.PostForm("blogLink"),
		Company:     c.PostForm("company"),
		Category:    models.ProjectCategory(c.PostForm("category")),
		TechStack:   c.PostFormArray("techStack"),
	}
	if v := c.PostForm("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		input.StartDate = t
	}
	if v := c.PostForm("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		input.EndDate = t
	}

	image, err := formFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	project, err := ctl.Projects.Create(input, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Project created successfully", project)
}

func (ctl *ProjectController) GetAll(c *gin.Context) {
	projects, err := ctl.Projects.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Projects fetched successfully", projects)
}

func (ctl *ProjectController) GetByID(c *gin.Context) {
	project, err := ctl.Projects.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Project fetched successfully", project)
}

func (ctl *ProjectController) Update(c *gin.Context) {
	patch := repository.ProjectPatch{
		Title:       formString(c, "title"),
		Description: formString(c, "description"),
		Link:        formString(c, "link"),
		Github:      formString(c, "github"),
		BlogLink:    formString(c, "blogLink"),
		Company:     formString(c, "company"),
		TechStack:   formStrings(c, "techStack"),
	}
	if v, ok := c.GetPostForm("category"); ok {
		category := models.ProjectCategory(v)
		patch.Category = &category
	}
	if v, ok := c.GetPostForm("startDate"); ok && v != "" {
		t, err := parseDate(v)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		patch.StartDate = t
	}
	if v, ok := c.GetPostForm("endDate"); ok && v != "" {
		t, err := parseDate(v)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		patch.EndDate = t
	}

	image, err := formFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	project, err := ctl.Projects.Update(c.Param("id"), patch, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Project updated successfully", project)
}

func (ctl *ProjectController) Delete(c *gin.Context) {
	project, err := ctl.Projects.Delete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Project deleted successfully", project)
}
