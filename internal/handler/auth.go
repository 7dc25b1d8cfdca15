package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sozhane/backend/config"
	"github.com/sozhane/backend/internal/middleware"
	"github.com/sozhane/backend/internal/model"
	"github.com/sozhane/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthHandler serves registration, login and the current-user endpoint.
type AuthHandler struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

func NewAuthHandler(cfg *config.Config, userRepo repository.UserRepository) *AuthHandler {
	return &AuthHandler{cfg: cfg, userRepo: userRepo}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func validateRegistration(req *registerRequest) []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "Ad soyad gereklidir.")
	}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, "E-posta gereklidir.")
	} else if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		errs = append(errs, "Geçerli bir e-posta adresi girin.")
	}
	if len(req.Password) < 6 {
		errs = append(errs, "Şifre en az 6 karakter olmalıdır.")
	}
	return errs
}

// Register creates an account and signs the user in
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek."})
		return
	}

	if errs := validateRegistration(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs[0], "errors": errs})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := h.userRepo.GetByEmail(email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Bu e-posta adresi zaten kayıtlı."})
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kayıt sırasında bir hata oluştu."})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.cfg.Auth.BcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kayıt sırasında bir hata oluştu."})
		return
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
	}
	if err := h.userRepo.Create(user); err != nil {
		// unique index race on email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Bu e-posta adresi zaten kayıtlı."})
			return
		}
		klog.Errorf("register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kayıt sırasında bir hata oluştu."})
		return
	}

	token, _, err := middleware.GenerateToken(user.ID, &h.cfg.Auth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kayıt sırasında bir hata oluştu."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials and issues a token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek."})
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "E-posta ve şifre gereklidir."})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçerli bir e-posta adresi girin."})
		return
	}

	user, err := h.userRepo.GetByEmail(email)
	if err != nil {
		// identical response for unknown email and wrong password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-posta veya şifre hatalı."})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-posta veya şifre hatalı."})
		return
	}

	token, _, err := middleware.GenerateToken(user.ID, &h.cfg.Auth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Giriş sırasında bir hata oluştu."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Oturum bulunamadı."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
