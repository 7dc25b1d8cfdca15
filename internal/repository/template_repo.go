package repository

import (
	"errors"

	"github.com/sozhane/backend/internal/model"
	"gorm.io/gorm"
)

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) ListActive() ([]model.ContractTemplate, error) {
	var templates []model.ContractTemplate
	err := r.db.Where("active = ?", true).
		Order("sort_order").
		Find(&templates).Error
	return templates, err
}

func (r *templateRepository) Get(id string) (*model.ContractTemplate, error) {
	var template model.ContractTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}
