package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Field types accepted in a template's fields schema.
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldNumber   = "number"
	FieldDate     = "date"
	FieldSelect   = "select"
)

// TemplateField is one entry of a template's ordered fields schema,
// stored as JSON on the template row.
type TemplateField struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Type         string   `json:"type"`
	Required     bool     `json:"required"`
	Section      string   `json:"section"`
	Placeholder  string   `json:"placeholder,omitempty"`
	DefaultValue any      `json:"defaultValue,omitempty"`
	Options      []string `json:"options,omitempty"`
}

// ContractTemplate is an immutable catalog entry: a fields schema plus a
// base text carrying {{field_id}} placeholders and named conditional slots.
type ContractTemplate struct {
	ID           string         `json:"id" gorm:"size:50;primaryKey"`
	Title        string         `json:"title" gorm:"size:255;not null"`
	Icon         string         `json:"icon" gorm:"size:10;not null;default:📄"`
	Description  string         `json:"description" gorm:"size:500;not null"`
	Category     string         `json:"category" gorm:"size:100;not null"`
	IsPopular    bool           `json:"is_popular" gorm:"default:false"`
	FieldsSchema datatypes.JSON `json:"fields_schema" gorm:"not null"`
	BaseText     string         `json:"base_text" gorm:"type:text;not null"`
	SortOrder    int            `json:"sort_order" gorm:"default:0"`
	Active       bool           `json:"active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (ContractTemplate) TableName() string { return "contract_templates" }

// Fields decodes the stored schema.
func (t *ContractTemplate) Fields() ([]TemplateField, error) {
	var fields []TemplateField
	if err := json.Unmarshal(t.FieldsSchema, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
