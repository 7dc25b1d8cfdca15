package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sozhane/backend/internal/middleware"
	"github.com/sozhane/backend/internal/service"
	"k8s.io/klog/v2"
)

type PaymentHandler struct {
	service *service.PaymentService
}

func NewPaymentHandler(service *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type checkoutRequest struct {
	PlanID string `json:"plan_id"`
}

// Checkout starts a purchase for a plan
// POST /api/payments
func (h *PaymentHandler) Checkout(c *gin.Context) {
	user := middleware.GetUser(c)

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz plan."})
		return
	}

	result, err := h.service.Checkout(c.Request.Context(), user, req.PlanID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPlan) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz plan."})
			return
		}
		klog.Errorf("checkout failed for user %s: %v", user.ID, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ödeme sistemi şu anda kullanılamıyor. Lütfen daha sonra tekrar deneyin."})
		return
	}

	c.JSON(http.StatusOK, result)
}

// History lists the user's payments
// GET /api/payments
func (h *PaymentHandler) History(c *gin.Context) {
	user := middleware.GetUser(c)
	payments, err := h.service.History(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ödemeler yüklenemedi."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// Webhook receives Stripe events
// POST /api/payments/webhook
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	if err := h.service.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		klog.Errorf("webhook processing failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
