package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skathar/portfolio-backend/repository"
)

type CertificateController struct {
	Certificates *repository.CertificateRepo
}

func NewCertificateController(certificates *repository.CertificateRepo) *CertificateController {
	return &CertificateController{Certificates: certificates}
}

func (ctl *CertificateController) Create(c *gin.Context) {
	input := repository.CertificateInput{
		Title:       c.PostForm("title"),
		Issuer:      c.PostForm("issuer"),
		Description: c.PostForm("description"),
		Link:        c.PostForm("link"),
		Category:    c.PostForm("category"),
	}
	if v := c.PostForm("date"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		input.Date = t
	}

	image, err := formFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	cert, err := ctl.Certificates.Create(input, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Certificate added successfully", cert)
}

func (ctl *CertificateController) GetAll(c *gin.Context) {
	certs, err := ctl.Certificates.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Certificates fetched successfully", certs)
}

func (ctl *CertificateController) GetByID(c *gin.Context) {
	cert, err := ctl.Certificates.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Certificate fetched successfully", cert)
}

func (ctl *CertificateController) Update(c *gin.Context) {
	patch := repository.CertificatePatch{
		Title:       formString(c, "title"),
		Issuer:      formString(c, "issuer"),
		Description: formString(c, "description"),
		Link:        formString(c, "link"),
		Category:    formString(c, "category"),
	}
	if v, ok := c.GetPostForm("date"); ok && v != "" {
		t, err := parseDate(v)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		patch.Date = t
	}

	image, err := formFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	cert, err := ctl.Certificates.Update(c.Param("id"), patch, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Certificate updated successfully", cert)
}

func (ctl *CertificateController) Delete(c *gin.Context) {
	cert, err := ctl.Certificates.Delete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Certificate deleted successfully", cert)
}
