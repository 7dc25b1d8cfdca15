package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Subscription plans. An empty Plan means the user has not purchased one.
const (
	PlanStarter = "starter"
	PlanPro     = "pro"
)

// Contract lifecycle. Creation writes StatusGenerated directly; StatusDraft
// and StatusFinalized are reserved and nothing transitions into them yet.
const (
	StatusDraft     = "draft"
	StatusGenerated = "generated"
	StatusFinalized = "finalized"
)

type User struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey"`
	Email            string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash     string    `json:"-" gorm:"size:255;not null"`
	Name             string    `json:"name" gorm:"size:255;not null"`
	Plan             string    `json:"plan" gorm:"size:20"` // starter, pro or empty
	ContractsLeft    int       `json:"contracts_left" gorm:"default:0"`
	StripeCustomerID string    `json:"-" gorm:"size:255"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// AINote is a legal explanation attached to a generated clause. Order
// within a contract's notes reflects explanatory priority.
type AINote struct {
	Title string `json:"title"`
	Note  string `json:"note"`
}

type Contract struct {
	ID            string            `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        string            `json:"user_id" gorm:"type:uuid;index;not null"`
	TemplateID    string            `json:"template_id" gorm:"size:50;index;not null"`
	Title         string            `json:"title" gorm:"size:255;not null"`
	Status        string            `json:"status" gorm:"size:20;default:draft"`
	FormData      datatypes.JSON    `json:"form_data" gorm:"not null"`
	GeneratedText string            `json:"generated_text" gorm:"type:text"`
	AINotes       datatypes.JSON    `json:"ai_notes"`
	PDFPath       string            `json:"pdf_path,omitempty" gorm:"size:500"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Template      *ContractTemplate `json:"template,omitempty" gorm:"foreignKey:TemplateID"`
	Versions      []ContractVersion `json:"versions,omitempty" gorm:"foreignKey:ContractID"`
}

func (Contract) TableName() string { return "contracts" }

func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// ContractVersion is an immutable snapshot. Version numbers per contract
// start at 1 and are contiguous; the owning contract's current text and
// notes always equal the latest version's.
type ContractVersion struct {
	ID            string         `json:"id" gorm:"type:uuid;primaryKey"`
	ContractID    string         `json:"contract_id" gorm:"type:uuid;index;not null"`
	VersionNumber int            `json:"version_number" gorm:"not null"`
	GeneratedText string         `json:"generated_text" gorm:"type:text;not null"`
	AINotes       datatypes.JSON `json:"ai_notes"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (ContractVersion) TableName() string { return "contract_versions" }

func (v *ContractVersion) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

type Payment struct {
	ID              string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          string    `json:"user_id" gorm:"type:uuid;index;not null"`
	StripePaymentID string    `json:"stripe_payment_id,omitempty" gorm:"size:255;index"`
	Plan            string    `json:"plan" gorm:"size:20;not null"`
	AmountTRY       int       `json:"amount_try" gorm:"not null"` // kuruş
	Status          string    `json:"status" gorm:"size:20;default:pending"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Payment) TableName() string { return "payments" }

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
