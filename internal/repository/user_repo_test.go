package repository

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/sozhane/backend/internal/model"
	"gorm.io/gorm"
)

func newUserRepo(t *testing.T) (UserRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewUserRepository(db), db
}

func TestUserCreateAssignsID(t *testing.T) {
	repo, _ := newUserRepo(t)
	user := &model.User{Email: "ali@example.com", Name: "Ali", PasswordHash: "x"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := repo.GetByEmail("ali@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("id = %q, want %q", got.ID, user.ID)
	}
}

func TestUserNotFound(t *testing.T) {
	repo, _ := newUserRepo(t)
	if _, err := repo.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get: want ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByEmail("missing@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByEmail: want ErrNotFound, got %v", err)
	}
}

func TestActivatePlan(t *testing.T) {
	repo, _ := newUserRepo(t)
	user := &model.User{Email: "ali@example.com", Name: "Ali", PasswordHash: "x"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.ActivatePlan(user.ID, model.PlanStarter, 5); err != nil {
		t.Fatalf("activate: %v", err)
	}
	got, err := repo.Get(user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Plan != model.PlanStarter || got.ContractsLeft != 5 {
		t.Fatalf("plan=%q left=%d", got.Plan, got.ContractsLeft)
	}

	// upgrading replaces the counter rather than adding to it
	if err := repo.ActivatePlan(user.ID, model.PlanPro, 0); err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	got, _ = repo.Get(user.ID)
	if got.Plan != model.PlanPro || got.ContractsLeft != 0 {
		t.Fatalf("plan=%q left=%d", got.Plan, got.ContractsLeft)
	}
}

func TestSetStripeCustomerID(t *testing.T) {
	repo, _ := newUserRepo(t)
	user := &model.User{Email: "ali@example.com", Name: "Ali", PasswordHash: "x"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.SetStripeCustomerID(user.ID, "cus_42"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ := repo.Get(user.ID)
	if got.StripeCustomerID != "cus_42" {
		t.Fatalf("customer id = %q", got.StripeCustomerID)
	}
}
