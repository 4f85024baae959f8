package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateTaxRule     = "CREATE_TAX_RULE"
	ActionUpdateTaxRule     = "UPDATE_TAX_RULE"
	ActionDeleteTaxRule     = "DELETE_TAX_RULE"
	ActionToggleTaxRule     = "TOGGLE_TAX_RULE"
	ActionBulkActivateTax   = "BULK_ACTIVATE_TAX_RULES"
	ActionBulkDeactivateTax = "BULK_DEACTIVATE_TAX_RULES"
	ActionBulkDeleteTax     = "BULK_DELETE_TAX_RULES"
	ActionRecordCharge      = "RECORD_CHARGE"
)

// AuditLog tracks Who, What, and When for critical system changes
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable for automated callers
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    string     `gorm:"type:jsonb" json:"details"` // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
