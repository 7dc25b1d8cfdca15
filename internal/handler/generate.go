package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sozhane/backend/internal/model"
	"github.com/sozhane/backend/internal/repository"
	"github.com/sozhane/backend/internal/service"
	"k8s.io/klog/v2"
)

// GenerateHandler produces contract text on demand without persisting it,
// backing the live preview in the form editor.
type GenerateHandler struct {
	service *service.ContractService
}

func NewGenerateHandler(service *service.ContractService) *GenerateHandler {
	return &GenerateHandler{service: service}
}

type generateRequest struct {
	TemplateID string            `json:"template_id"`
	FormData   map[string]string `json:"form_data"`
	SkipAI     bool              `json:"skip_ai"`
}

// Generate fills and optionally refines a template
// POST /api/ai/generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TemplateID == "" || req.FormData == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Şablon ve form verisi gerekli."})
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req.TemplateID, req.FormData, req.SkipAI)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Şablon bulunamadı."})
			return
		}
		klog.Errorf("generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sözleşme oluşturulamadı."})
		return
	}

	notes := result.Notes
	if notes == nil {
		notes = []model.AINote{}
	}
	c.JSON(http.StatusOK, gin.H{
		"contract": result.Contract,
		"notes":    notes,
		"ai_used":  result.AIUsed,
	})
}
