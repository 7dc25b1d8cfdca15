package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sozhane/backend/internal/fill"
	"github.com/sozhane/backend/internal/model"
	"github.com/sozhane/backend/internal/repository"
	"github.com/sozhane/backend/internal/service/refine"
	"k8s.io/klog/v2"
)

// Refiner produces the final contract text for a filled template.
type Refiner interface {
	Refine(ctx context.Context, baseText string, data fill.FormData, templateTitle string) refine.Result
}

// MissingFieldsError reports required fields the caller left empty.
type MissingFieldsError struct {
	Labels []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Labels, ", "))
}

type ContractService struct {
	contractRepo repository.ContractRepository
	templateRepo repository.TemplateRepository
	refiner      Refiner
}

func NewContractService(contractRepo repository.ContractRepository, templateRepo repository.TemplateRepository, refiner Refiner) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		templateRepo: templateRepo,
		refiner:      refiner,
	}
}

// Generate produces contract text without persisting anything. When skipAI
// is set only template substitution runs, which keeps previews fast and free.
func (s *ContractService) Generate(ctx context.Context, templateID string, data fill.FormData, skipAI bool) (refine.Result, error) {
	template, err := s.templateRepo.Get(templateID)
	if err != nil {
		return refine.Result{}, err
	}
	if skipAI {
		return refine.Result{Contract: fill.Apply(template.BaseText, data)}, nil
	}
	return s.refiner.Refine(ctx, template.BaseText, data, template.Title), nil
}

// CreateAndPersist runs the full generation pipeline for an authenticated
// user: field validation, plan check, refinement, then a single transaction
// that stores the contract, its first version and (for metered plans) the
// quota decrement.
func (s *ContractService) CreateAndPersist(ctx context.Context, user *model.User, templateID string, data fill.FormData) (*model.Contract, refine.Result, error) {
	template, err := s.templateRepo.Get(templateID)
	if err != nil {
		return nil, refine.Result{}, err
	}

	fields, err := template.Fields()
	if err != nil {
		return nil, refine.Result{}, fmt.Errorf("template %s has invalid schema: %w", template.ID, err)
	}
	if missing := missingRequired(fields, data); len(missing) > 0 {
		return nil, refine.Result{}, &MissingFieldsError{Labels: missing}
	}

	if err := AuthorizeGeneration(user); err != nil {
		return nil, refine.Result{}, err
	}

	result := s.refiner.Refine(ctx, template.BaseText, data, template.Title)

	// The refinement ladder may have swallowed a context cancellation as a
	// fallback note. Do not store a contract the caller already gave up on.
	if err := ctx.Err(); err != nil {
		return nil, refine.Result{}, err
	}

	formData, err := json.Marshal(data)
	if err != nil {
		return nil, refine.Result{}, err
	}
	aiNotes, err := json.Marshal(result.Notes)
	if err != nil {
		return nil, refine.Result{}, err
	}

	contract := &model.Contract{
		UserID:        user.ID,
		TemplateID:    template.ID,
		Title:         deriveTitle(template, fields, data),
		FormData:      formData,
		GeneratedText: result.Contract,
		AINotes:       aiNotes,
	}

	decrementUserID := ""
	if user.Plan == model.PlanStarter {
		decrementUserID = user.ID
	}
	if err := s.contractRepo.CreateGenerated(contract, decrementUserID); err != nil {
		return nil, refine.Result{}, err
	}
	klog.V(6).Infof("contract %s created for user %s (template=%s ai=%v)", contract.ID, user.ID, template.ID, result.AIUsed)
	return contract, result, nil
}

func (s *ContractService) ListByUser(userID string) ([]model.Contract, error) {
	return s.contractRepo.GetByUser(userID)
}

// GetOwned returns the contract with its version history, refusing access
// to contracts belonging to other users.
func (s *ContractService) GetOwned(user *model.User, contractID string) (*model.Contract, []model.ContractVersion, error) {
	contract, err := s.contractRepo.Get(contractID)
	if err != nil {
		return nil, nil, err
	}
	if contract.UserID != user.ID {
		return nil, nil, ErrForbidden
	}
	versions, err := s.contractRepo.GetVersions(contractID)
	if err != nil {
		return nil, nil, err
	}
	return contract, versions, nil
}

func missingRequired(fields []model.TemplateField, data fill.FormData) []string {
	var missing []string
	for _, field := range fields {
		if !field.Required {
			continue
		}
		if strings.TrimSpace(data[field.ID]) == "" {
			missing = append(missing, field.Label)
		}
	}
	return missing
}

// deriveTitle builds a human title from the first two party-name fields
// when both are filled, otherwise from the first schema field's value.
func deriveTitle(template *model.ContractTemplate, fields []model.TemplateField, data fill.FormData) string {
	var parties []string
	for _, field := range fields {
		if strings.Contains(field.ID, "name") && !strings.Contains(field.ID, "partnership") {
			parties = append(parties, strings.TrimSpace(data[field.ID]))
		}
	}
	if len(parties) >= 2 && parties[0] != "" && parties[1] != "" {
		return fmt.Sprintf("%s ↔ %s", parties[0], parties[1])
	}

	if len(fields) > 0 {
		if v := strings.TrimSpace(data[fields[0].ID]); v != "" {
			return fmt.Sprintf("%s - %s", v, template.Title)
		}
	}
	return template.Title
}
