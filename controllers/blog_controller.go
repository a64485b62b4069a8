package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skathar/portfolio-backend/repository"
)

type BlogController struct {
	Blogs *repository.BlogRepo
}

func NewBlogController(blogs *repository.BlogRepo) *BlogController {
	return &BlogController{Blogs: blogs}
}

func (ctl *BlogController) Create(c *gin.Context) {
	input := repository.BlogInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Link:        c.PostForm("link"),
		Category:    c.PostForm("category"),
	}

	image, err := formFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	blog, err := ctl.Blogs.Create(input, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Blog created successfully", blog)
}

func (ctl *BlogController) GetAll(c *gin.Context) {
	blogs, err := ctl.Blogs.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Blogs fetched successfully", blogs)
}

func (ctl *BlogController) GetByID(c *gin.Context) {
	blog, err := ctl.Blogs.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Blog fetched successfully", blog)
}

func (ctl *BlogController) Update(c *gin.Context) {
	patch := repository.BlogPatch{
		Title:       formString(c, "title"),
		Description: formString(c, "description"),
		Link:        formString(c, "link"),
		Category:    formString(c, "category"),
	}

	image, err := formFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	blog, err := ctl.Blogs.Update(c.Param("id"), patch, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Blog updated successfully", blog)
}

func (ctl *BlogController) Delete(c *gin.Context) {
	blog, err := ctl.Blogs.Delete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Blog deleted successfully", blog)
}
