package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/sozhane/backend/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) CreateGenerated(contract *model.Contract, decrementUserID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		contract.Status = model.StatusGenerated
		if err := tx.Create(contract).Error; err != nil {
			return err
		}

		next, err := nextVersionNumber(tx, contract.ID)
		if err != nil {
			return err
		}
		version := &model.ContractVersion{
			ContractID:    contract.ID,
			VersionNumber: next,
			GeneratedText: contract.GeneratedText,
			AINotes:       contract.AINotes,
		}
		if err := tx.Create(version).Error; err != nil {
			return err
		}

		if decrementUserID != "" {
			if err := decrementContractsLeft(tx, decrementUserID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *contractRepository) Get(id string) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.Preload("Template").First(&contract, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) GetByUser(userID string) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.Preload("Template").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) GetVersions(contractID string) ([]model.ContractVersion, error) {
	var versions []model.ContractVersion
	err := r.db.Where("contract_id = ?", contractID).
		Order("version_number DESC").
		Find(&versions).Error
	return versions, err
}

// AddVersion appends the next version snapshot and mirrors its text and
// notes onto the contract, so the contract's current state always equals
// the latest version.
func (r *contractRepository) AddVersion(contractID, generatedText string, aiNotes datatypes.JSON) (*model.ContractVersion, error) {
	var version *model.ContractVersion
	err := r.db.Transaction(func(tx *gorm.DB) error {
		next, err := nextVersionNumber(tx, contractID)
		if err != nil {
			return err
		}

		version = &model.ContractVersion{
			ContractID:    contractID,
			VersionNumber: next,
			GeneratedText: generatedText,
			AINotes:       aiNotes,
		}
		if err := tx.Create(version).Error; err != nil {
			return err
		}

		return tx.Model(&model.Contract{}).
			Where("id = ?", contractID).
			Updates(map[string]interface{}{
				"generated_text": generatedText,
				"ai_notes":       aiNotes,
				"updated_at":     time.Now(),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return version, nil
}

// nextVersionNumber serializes version assignment through the enclosing
// transaction, keeping numbers contiguous and strictly increasing.
func nextVersionNumber(tx *gorm.DB, contractID string) (int, error) {
	var maxVersion sql.NullInt64
	if err := tx.Model(&model.ContractVersion{}).
		Where("contract_id = ?", contractID).
		Select("MAX(version_number)").
		Scan(&maxVersion).Error; err != nil {
		return 0, err
	}
	if !maxVersion.Valid {
		return 1, nil
	}
	return int(maxVersion.Int64) + 1, nil
}
