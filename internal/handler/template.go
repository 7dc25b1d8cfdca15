package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sozhane/backend/internal/repository"
	"github.com/sozhane/backend/internal/service"
)

type TemplateHandler struct {
	service *service.TemplateService
}

func NewTemplateHandler(service *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// List returns the active template catalog
// GET /api/templates
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Şablonlar yüklenemedi."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// Get returns a single template with its field schema
// GET /api/templates/:id
func (h *TemplateHandler) Get(c *gin.Context) {
	template, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Şablon bulunamadı."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Şablonlar yüklenemedi."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": template})
}
