package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sozhane/backend/config"
	"github.com/sozhane/backend/internal/handler"
	"github.com/sozhane/backend/internal/model"
	"github.com/sozhane/backend/internal/pkg/stripeapi"
	"github.com/sozhane/backend/internal/repository"
	"github.com/sozhane/backend/internal/router"
	"github.com/sozhane/backend/internal/service"
	"github.com/sozhane/backend/internal/service/refine"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret",
			TokenExpireHours: 1,
			BcryptCost:       4, // keep tests fast
		},
	}
}

// newTestApp wires the whole API against an in-memory database. The LLM key
// is left empty so generation always takes the template-only path.
func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.ContractTemplate{}, &model.Contract{}, &model.ContractVersion{}, &model.Payment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := service.InitDefaultTemplates(db); err != nil {
		t.Fatalf("seed templates: %v", err)
	}

	cfg := testConfig()
	userRepo := repository.NewUserRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	contractRepo := repository.NewContractRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	refineService := refine.NewService(cfg)
	templateService := service.NewTemplateService(templateRepo)
	contractService := service.NewContractService(contractRepo, templateRepo, refineService)
	paymentService := service.NewPaymentService(cfg, stripeapi.NewClient(&cfg.Stripe), userRepo, paymentRepo)

	r := router.Setup(cfg,
		userRepo,
		handler.NewAuthHandler(cfg, userRepo),
		handler.NewTemplateHandler(templateService),
		handler.NewContractHandler(contractService),
		handler.NewGenerateHandler(contractService),
		handler.NewPaymentHandler(paymentService),
		handler.NewHealthHandler(db),
	)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "secret123",
		"name":     "Test Kullanıcı",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("register returned empty token")
	}
	return resp.Token
}

func grantPlan(t *testing.T, db *gorm.DB, email, plan string, contractsLeft int) {
	t.Helper()
	err := db.Model(&model.User{}).Where("email = ?", email).
		Updates(map[string]interface{}{"plan": plan, "contracts_left": contractsLeft}).Error
	if err != nil {
		t.Fatalf("grant plan: %v", err)
	}
}

func ndaPayload() gin.H {
	return gin.H{
		"template_id": "nda",
		"form_data": map[string]string{
			"discloser_name":    "Acme Yazılım A.Ş.",
			"discloser_address": "Maslak, İstanbul",
			"discloser_tax":     "1234567890",
			"receiver_name":     "Mehmet Demir",
			"receiver_address":  "Çankaya, Ankara",
			"receiver_tax":      "98765432109",
			"confidential_info": "Kaynak kodu",
			"purpose":           "Proje değerlendirmesi",
			"duration_months":   "24",
			"jurisdiction":      "İstanbul",
		},
	}
}

func TestHealth(t *testing.T) {
	r, _ := newTestApp(t)
	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "not-an-email",
		"password": "123",
		"name":     "",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) != 3 || resp.Error != "Ad soyad gereklidir." {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestApp(t)
	registerUser(t, r, "ali@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "Ali@Example.com", // same address, different case
		"password": "secret123",
		"name":     "Ali",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestLoginFlow(t *testing.T) {
	r, _ := newTestApp(t)
	registerUser(t, r, "ali@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ali@example.com", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ali@example.com", "password": "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" || resp.User.Email != "ali@example.com" {
		t.Fatalf("resp = %+v", resp)
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", resp.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "password_hash") {
		t.Fatal("password hash leaked in response")
	}
}

func TestTemplateCatalog(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(t, r, http.MethodGet, "/api/templates", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Templates []struct {
			ID        string `json:"id"`
			IsPopular bool   `json:"is_popular"`
		} `json:"templates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Templates) != 4 {
		t.Fatalf("got %d templates", len(resp.Templates))
	}
	if resp.Templates[0].ID != "nda" {
		t.Fatalf("first template = %s, want nda (sort order)", resp.Templates[0].ID)
	}

	w = doJSON(t, r, http.MethodGet, "/api/templates/lease", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown template status = %d", w.Code)
	}
}

func TestContractLifecycle(t *testing.T) {
	r, db := newTestApp(t)
	token := registerUser(t, r, "ali@example.com")

	// no plan yet
	w := doJSON(t, r, http.MethodPost, "/api/contracts", token, ndaPayload())
	if w.Code != http.StatusForbidden {
		t.Fatalf("no-plan status = %d, body = %s", w.Code, w.Body.String())
	}

	grantPlan(t, db, "ali@example.com", model.PlanStarter, 1)

	w = doJSON(t, r, http.MethodPost, "/api/contracts", token, ndaPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var created struct {
		Contract struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"contract"`
		AIUsed bool `json:"ai_used"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.AIUsed {
		t.Fatal("ai_used must be false without credentials")
	}
	if created.Contract.Title != "Acme Yazılım A.Ş. ↔ Mehmet Demir" {
		t.Fatalf("title = %q", created.Contract.Title)
	}

	// quota spent
	w = doJSON(t, r, http.MethodPost, "/api/contracts", token, ndaPayload())
	if w.Code != http.StatusForbidden {
		t.Fatalf("exhausted status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/contracts", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/contracts/"+created.Contract.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, body = %s", w.Code, w.Body.String())
	}
	var detail struct {
		Versions []struct {
			VersionNumber int `json:"version_number"`
		} `json:"versions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(detail.Versions) != 1 || detail.Versions[0].VersionNumber != 1 {
		t.Fatalf("versions = %+v", detail.Versions)
	}

	// another user cannot read it
	otherToken := registerUser(t, r, "veli@example.com")
	w = doJSON(t, r, http.MethodGet, "/api/contracts/"+created.Contract.ID, otherToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("cross-user status = %d", w.Code)
	}
}

func TestContractMissingFields(t *testing.T) {
	r, db := newTestApp(t)
	token := registerUser(t, r, "ali@example.com")
	grantPlan(t, db, "ali@example.com", model.PlanPro, 0)

	payload := ndaPayload()
	payload["form_data"] = map[string]string{"discloser_name": "Acme"}
	w := doJSON(t, r, http.MethodPost, "/api/contracts", token, payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Error         string   `json:"error"`
		MissingFields []string `json:"missing_fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.MissingFields) == 0 || !strings.HasPrefix(resp.Error, "Zorunlu alanlar eksik: ") {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestGeneratePreview(t *testing.T) {
	r, _ := newTestApp(t)
	token := registerUser(t, r, "ali@example.com")

	payload := ndaPayload()
	payload["skip_ai"] = true
	w := doJSON(t, r, http.MethodPost, "/api/ai/generate", token, payload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Contract string       `json:"contract"`
		Notes    []model.AINote `json:"notes"`
		AIUsed   bool         `json:"ai_used"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AIUsed || len(resp.Notes) != 0 {
		t.Fatalf("resp = %+v", resp)
	}
	if !strings.Contains(resp.Contract, "GİZLİLİK SÖZLEŞMESİ") || strings.Contains(resp.Contract, "{{") {
		t.Fatal("preview text malformed")
	}

	// preview works without a plan, but not without a session
	w = doJSON(t, r, http.MethodPost, "/api/ai/generate", "", payload)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d", w.Code)
	}
}

func TestCheckoutRejectsUnknownPlan(t *testing.T) {
	r, _ := newTestApp(t)
	token := registerUser(t, r, "ali@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/payments", token, gin.H{"plan_id": "enterprise"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestWebhookActivatesPlan(t *testing.T) {
	r, db := newTestApp(t)
	registerUser(t, r, "ali@example.com")

	var user model.User
	if err := db.First(&user, "email = ?", "ali@example.com").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}

	payload := fmt.Sprintf(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_1","metadata":{"user_id":%q,"plan_id":"starter"}}}}`, user.ID)
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	if err := db.First(&user, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if user.Plan != model.PlanStarter || user.ContractsLeft != 5 {
		t.Fatalf("plan=%q left=%d", user.Plan, user.ContractsLeft)
	}
}
