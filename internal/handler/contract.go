package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sozhane/backend/internal/middleware"
	"github.com/sozhane/backend/internal/repository"
	"github.com/sozhane/backend/internal/service"
	"k8s.io/klog/v2"
)

type ContractHandler struct {
	service *service.ContractService
}

func NewContractHandler(service *service.ContractService) *ContractHandler {
	return &ContractHandler{service: service}
}

// List returns the user's contracts, newest first
// GET /api/contracts
func (h *ContractHandler) List(c *gin.Context) {
	user := middleware.GetUser(c)
	contracts, err := h.service.ListByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sözleşmeler yüklenemedi."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

type createContractRequest struct {
	TemplateID string            `json:"template_id"`
	FormData   map[string]string `json:"form_data"`
}

// Create runs the full generation pipeline and stores the result
// POST /api/contracts
func (h *ContractHandler) Create(c *gin.Context) {
	user := middleware.GetUser(c)

	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TemplateID == "" || req.FormData == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Şablon ve form verisi gerekli."})
		return
	}

	contract, result, err := h.service.CreateAndPersist(c.Request.Context(), user, req.TemplateID, req.FormData)
	if err != nil {
		var missing *service.MissingFieldsError
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Şablon bulunamadı."})
		case errors.Is(err, service.ErrPlanRequired):
			c.JSON(http.StatusForbidden, gin.H{"error": "Sözleşme oluşturmak için bir plan satın almalısınız."})
		case errors.Is(err, service.ErrQuotaExhausted), errors.Is(err, repository.ErrQuotaExhausted):
			c.JSON(http.StatusForbidden, gin.H{"error": "Sözleşme hakkınız kalmadı. Pro plana yükseltin."})
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":          "Zorunlu alanlar eksik: " + strings.Join(missing.Labels, ", "),
				"missing_fields": missing.Labels,
			})
		default:
			klog.Errorf("contract creation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Sözleşme oluşturulamadı."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"contract": contract, "ai_used": result.AIUsed})
}

// Get returns a contract with its version history
// GET /api/contracts/:id
func (h *ContractHandler) Get(c *gin.Context) {
	user := middleware.GetUser(c)

	contract, versions, err := h.service.GetOwned(user, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Sözleşme bulunamadı."})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Bu sözleşmeye erişim yetkiniz yok."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Sözleşme yüklenemedi."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": contract, "versions": versions})
}
