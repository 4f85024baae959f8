package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetadmin/internal/model"
	"fleetadmin/internal/repository"
	"fleetadmin/internal/tax"

	"github.com/samber/lo"
)

// --- DTOs ---

type RecordChargeRequest struct {
	ReferenceID    string `json:"reference_id" binding:"max=100"`
	Service        string `json:"service" binding:"required,max=30"`
	Zone           string `json:"zone" binding:"max=100"`
	VehicleType    string `json:"vehicle_type" binding:"max=50"`
	BaseAmount     string `json:"base_amount" binding:"required"`
	EvaluationTime string `json:"evaluation_time"` // RFC3339, defaults to now
	Note           string `json:"note"`
}

type ChargeFilter struct {
	Service string
	Zone    string
	Page    int
	Limit   int
}

type ChargeTaxLineResponse struct {
	Position int `json:"position"`
	TaxLineResponse
}

type ChargeResponse struct {
	ID                        string                  `json:"id"`
	ChargeNo                  string                  `json:"charge_no"`
	ReferenceID               string                  `json:"reference_id"`
	Service                   string                  `json:"service"`
	Zone                      string                  `json:"zone"`
	VehicleType               string                  `json:"vehicle_type"`
	BaseAmount                string                  `json:"base_amount"`
	TotalTax                  string                  `json:"total_tax"`
	TotalAmount               string                  `json:"total_amount"`
	EffectiveBaseForInclusive string                  `json:"effective_base_for_inclusive"`
	TaxLines                  []ChargeTaxLineResponse `json:"tax_lines"`
	EvaluatedAt               string                  `json:"evaluated_at"`
	Note                      string                  `json:"note"`
	CreatedAt                 string                  `json:"created_at"`
}

// --- Interface ---

type ChargeService interface {
	RecordCharge(ctx context.Context, req RecordChargeRequest, userID string) (ChargeResponse, error)
	ListCharges(ctx context.Context, filter ChargeFilter) ([]ChargeResponse, int64, error)
	GetCharge(ctx context.Context, id string) (ChargeResponse, error)
}

type chargeService struct {
	ServiceParams
}

func NewChargeService(params ServiceParams) ChargeService {
	return &chargeService{ServiceParams: params}
}

// --- Implementation ---

// RecordCharge prices a ride or delivery with the live tax rules and stores the breakdown.
func (s *chargeService) RecordCharge(ctx context.Context, req RecordChargeRequest, userID string) (ChargeResponse, error) {
	chargeCtx, err := toChargeContext(CalculateTaxRequest{
		Amount:         req.BaseAmount,
		Zone:           req.Zone,
		VehicleType:    req.VehicleType,
		Service:        req.Service,
		EvaluationTime: req.EvaluationTime,
	})
	if err != nil {
		return ChargeResponse{}, err
	}
	chargeCtx.Service = strings.ToLower(chargeCtx.Service)
	if chargeCtx.EvaluationTime.IsZero() {
		chargeCtx.EvaluationTime = s.now()
	}

	result, err := s.Engine.ComputeTax(ctx, chargeCtx)
	if err != nil {
		return ChargeResponse{}, err
	}

	charge := model.Charge{
		ReferenceID:               strings.TrimSpace(req.ReferenceID),
		Service:                   chargeCtx.Service,
		Zone:                      chargeCtx.Zone,
		VehicleType:               chargeCtx.VehicleType,
		BaseAmount:                result.BaseAmount,
		TotalTax:                  result.TotalTax,
		TotalAmount:               result.TotalAmount,
		EffectiveBaseForInclusive: result.EffectiveBaseForInclusive,
		EvaluatedAt:               chargeCtx.EvaluationTime,
		TaxLines: lo.Map(result.Lines, func(l tax.Line, i int) model.ChargeTaxLine {
			return model.ChargeTaxLine{
				TaxRuleID:   l.RuleID,
				RuleName:    l.RuleName,
				Position:    i + 1,
				TaxBase:     l.TaxBase,
				TaxAmount:   l.TaxAmount,
				IsInclusive: l.IsInclusive,
			}
		}),
		Note:      req.Note,
		CreatedBy: parseUserID(userID),
	}

	err = s.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		chargeNo, err := s.generateChargeNo(txCtx)
		if err != nil {
			return repoError(err, "Charges")
		}
		charge.ChargeNo = chargeNo

		if err := s.ChargeRepo.Create(txCtx, &charge); err != nil {
			return repoError(err, "Charge")
		}

		writeAuditLog(txCtx, s.ServiceParams, userID, model.ActionRecordCharge, charge.ID.String(), charge.ChargeNo, map[string]string{
			"service":      charge.Service,
			"base_amount":  charge.BaseAmount.StringFixed(2),
			"total_tax":    charge.TotalTax.StringFixed(2),
			"total_amount": charge.TotalAmount.StringFixed(2),
		})
		return nil
	})
	if err != nil {
		return ChargeResponse{}, err
	}

	s.Logger.Infow("charge recorded",
		"charge_no", charge.ChargeNo,
		"service", charge.Service,
		"total_tax", charge.TotalTax.StringFixed(2),
		"lines", len(charge.TaxLines),
	)

	return toChargeResponse(charge), nil
}

func (s *chargeService) ListCharges(ctx context.Context, filter ChargeFilter) ([]ChargeResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	charges, total, err := s.ChargeRepo.List(ctx, repository.ChargeListFilter{
		Service: strings.ToLower(strings.TrimSpace(filter.Service)),
		Zone:    strings.TrimSpace(filter.Zone),
		Page:    filter.Page,
		Limit:   filter.Limit,
	})
	if err != nil {
		return nil, 0, repoError(err, "Charges")
	}

	return lo.Map(charges, func(c model.Charge, _ int) ChargeResponse {
		return toChargeResponse(c)
	}), total, nil
}

func (s *chargeService) GetCharge(ctx context.Context, id string) (ChargeResponse, error) {
	chargeID, err := parseID("charge id", id)
	if err != nil {
		return ChargeResponse{}, err
	}

	charge, err := s.ChargeRepo.FindByID(ctx, chargeID)
	if err != nil {
		return ChargeResponse{}, repoError(err, "Charge")
	}
	return toChargeResponse(*charge), nil
}

// generateChargeNo must run inside the transaction that inserts the charge.
func (s *chargeService) generateChargeNo(ctx context.Context) (string, error) {
	prefix := "CHG-" + s.now().Format("20060102") + "-"

	if err := s.ChargeRepo.LockChargeSequence(ctx, prefix); err != nil {
		return "", err
	}
	count, err := s.ChargeRepo.CountByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%05d", prefix, count+1), nil
}

// --- Mapping ---

func toChargeResponse(c model.Charge) ChargeResponse {
	return ChargeResponse{
		ID:                        c.ID.String(),
		ChargeNo:                  c.ChargeNo,
		ReferenceID:               c.ReferenceID,
		Service:                   c.Service,
		Zone:                      c.Zone,
		VehicleType:               c.VehicleType,
		BaseAmount:                c.BaseAmount.StringFixed(2),
		TotalTax:                  c.TotalTax.StringFixed(2),
		TotalAmount:               c.TotalAmount.StringFixed(2),
		EffectiveBaseForInclusive: c.EffectiveBaseForInclusive.StringFixed(2),
		TaxLines: lo.Map(c.TaxLines, func(l model.ChargeTaxLine, _ int) ChargeTaxLineResponse {
			return ChargeTaxLineResponse{
				Position: l.Position,
				TaxLineResponse: TaxLineResponse{
					RuleID:      l.TaxRuleID,
					RuleName:    l.RuleName,
					TaxBase:     l.TaxBase.StringFixed(2),
					TaxAmount:   l.TaxAmount.StringFixed(2),
					IsInclusive: l.IsInclusive,
				},
			}
		}),
		EvaluatedAt: c.EvaluatedAt.Format(time.RFC3339),
		Note:        c.Note,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}
