package service

import (
	"github.com/sozhane/backend/internal/model"
	"github.com/sozhane/backend/internal/repository"
)

type TemplateService struct {
	templateRepo repository.TemplateRepository
}

func NewTemplateService(templateRepo repository.TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

// List returns the active catalog in sort order.
func (s *TemplateService) List() ([]model.ContractTemplate, error) {
	return s.templateRepo.ListActive()
}

func (s *TemplateService) Get(id string) (*model.ContractTemplate, error) {
	return s.templateRepo.Get(id)
}
