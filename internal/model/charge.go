package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Charge is a priced ride or delivery with the tax breakdown computed at the time it was recorded.
type Charge struct {
	ID                        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChargeNo                  string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"charge_no"`
	ReferenceID               string          `gorm:"type:varchar(100);index" json:"reference_id"` // ride or delivery id in the dispatch system
	Service                   string          `gorm:"type:varchar(30);not null;index" json:"service"`
	Zone                      string          `gorm:"type:varchar(100);index" json:"zone"`
	VehicleType               string          `gorm:"type:varchar(50)" json:"vehicle_type"`
	BaseAmount                decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"base_amount"`
	TotalTax                  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total_tax"`
	TotalAmount               decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_amount"` // base + exclusive taxes
	EffectiveBaseForInclusive decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"effective_base_for_inclusive"`
	EvaluatedAt               time.Time       `gorm:"not null" json:"evaluated_at"`
	TaxLines                  []ChargeTaxLine `gorm:"foreignKey:ChargeID;constraint:OnDelete:CASCADE" json:"tax_lines"`
	Note                      string          `gorm:"type:text" json:"note"`
	CreatedBy                 *uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt                 time.Time       `json:"created_at"`
}

// ChargeTaxLine is one applied rule of a Charge, frozen at recording time.
type ChargeTaxLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChargeID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"charge_id"`
	TaxRuleID   string          `gorm:"type:varchar(50);index" json:"tax_rule_id"`
	RuleName    string          `gorm:"type:varchar(255)" json:"rule_name"`
	Position    int             `gorm:"not null" json:"position"`
	TaxBase     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"tax_base"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"tax_amount"`
	IsInclusive bool            `gorm:"not null;default:false" json:"is_inclusive"`
}
