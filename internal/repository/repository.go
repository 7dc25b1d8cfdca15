package repository

import (
	"errors"

	"github.com/sozhane/backend/internal/model"
	"gorm.io/datatypes"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrQuotaExhausted is returned when the guarded quota decrement finds no
// remaining contracts at commit time. The surrounding transaction rolls
// back, so a raced-out generation leaves no trace.
var ErrQuotaExhausted = errors.New("contract quota exhausted")

type UserRepository interface {
	Create(user *model.User) error
	Get(id string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	ActivatePlan(userID, plan string, contractsLeft int) error
	SetStripeCustomerID(userID, customerID string) error
}

type TemplateRepository interface {
	ListActive() ([]model.ContractTemplate, error)
	Get(id string) (*model.ContractTemplate, error)
}

type ContractRepository interface {
	// CreateGenerated writes the contract and its version 1 atomically.
	// When decrementUserID is non-empty the starter-plan quota decrement
	// joins the same transaction.
	CreateGenerated(contract *model.Contract, decrementUserID string) error
	Get(id string) (*model.Contract, error)
	GetByUser(userID string) ([]model.Contract, error)
	GetVersions(contractID string) ([]model.ContractVersion, error)
	AddVersion(contractID, generatedText string, aiNotes datatypes.JSON) (*model.ContractVersion, error)
}

type PaymentRepository interface {
	Create(payment *model.Payment) error
	GetByUser(userID string) ([]model.Payment, error)
	GetByStripeID(stripeID string) (*model.Payment, error)
	MarkCompleted(id, stripePaymentID string) error
}
