package repository

import (
	"errors"
	"time"

	"github.com/sozhane/backend/internal/model"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Get(id string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ActivatePlan(userID, plan string, contractsLeft int) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"plan":           plan,
			"contracts_left": contractsLeft,
			"updated_at":     time.Now(),
		}).Error
}

func (r *userRepository) SetStripeCustomerID(userID, customerID string) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("stripe_customer_id", customerID).Error
}

// decrementContractsLeft applies the guarded decrement inside tx. It
// reports ErrQuotaExhausted when contracts_left is no longer positive.
func decrementContractsLeft(tx *gorm.DB, userID string) error {
	res := tx.Model(&model.User{}).
		Where("id = ? AND contracts_left > 0", userID).
		Updates(map[string]interface{}{
			"contracts_left": gorm.Expr("contracts_left - 1"),
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuotaExhausted
	}
	return nil
}
