package repository

import (
	"errors"

	"github.com/sozhane/backend/internal/model"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *model.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepository) GetByUser(userID string) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) GetByStripeID(stripeID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.First(&payment, "stripe_payment_id = ?", stripeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) MarkCompleted(id, stripePaymentID string) error {
	return r.db.Model(&model.Payment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":            model.PaymentCompleted,
			"stripe_payment_id": stripePaymentID,
		}).Error
}
