package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	ierr "fleetadmin/internal/errors"
	"fleetadmin/internal/model"
	"fleetadmin/internal/service"
	"fleetadmin/internal/testutil"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ChargeServiceSuite struct {
	ServiceSuite
	taxes   service.TaxService
	charges service.ChargeService
	audits  service.AuditService
	ctx     context.Context
}

func TestChargeService(t *testing.T) {
	suite.Run(t, new(ChargeServiceSuite))
}

func (s *ChargeServiceSuite) SetupTest() {
	s.ServiceSuite.SetupTest()
	s.taxes = service.NewTaxService(s.params)
	s.charges = service.NewChargeService(s.params)
	s.audits = service.NewAuditService(s.params)
	s.ctx = context.Background()

	_, err := s.taxes.CreateTaxRule(s.ctx, vatRequest(), testUserID)
	s.Require().NoError(err)
	_, err = s.taxes.CreateTaxRule(s.ctx, airportFeeRequest(), testUserID)
	s.Require().NoError(err)

	inclusive := service.TaxRuleRequest{
		Name:         "Delivery levy",
		TaxType:      "percentage",
		Rate:         "10",
		IsInclusive:  true,
		ApplicableTo: "delivery_only",
	}
	_, err = s.taxes.CreateTaxRule(s.ctx, inclusive, testUserID)
	s.Require().NoError(err)
}

func (s *ChargeServiceSuite) TestRecordCharge() {
	resp, err := s.charges.RecordCharge(s.ctx, service.RecordChargeRequest{
		ReferenceID: "ride-1001",
		Service:     "Ride",
		Zone:        "airport",
		VehicleType: "sedan",
		BaseAmount:  "50",
	}, testUserID)
	s.Require().NoError(err)

	s.Equal("CHG-20261001-00001", resp.ChargeNo)
	s.Equal("ride", resp.Service)
	s.Equal("6.00", resp.TotalTax)
	s.Equal("56.00", resp.TotalAmount)
	s.Require().Len(resp.TaxLines, 2)
	s.Equal(1, resp.TaxLines[0].Position)
	s.Equal("VAT", resp.TaxLines[0].RuleName)
	s.Equal("Airport fee", resp.TaxLines[1].RuleName)
	s.Equal("2026-10-01T08:30:00Z", resp.EvaluatedAt)

	got, err := s.charges.GetCharge(s.ctx, resp.ID)
	s.Require().NoError(err)
	s.Equal(resp.ChargeNo, got.ChargeNo)
	s.Len(got.TaxLines, 2)

	s.Equal(model.ActionRecordCharge, s.audit.Actions()[len(s.audit.Actions())-1])
}

func (s *ChargeServiceSuite) TestRecordCharge_InclusiveTax() {
	resp, err := s.charges.RecordCharge(s.ctx, service.RecordChargeRequest{
		Service:    "delivery",
		BaseAmount: "100",
	}, testUserID)
	s.Require().NoError(err)

	// VAT 8.00 exclusive, levy 10.00 inclusive.
	s.Equal("18.00", resp.TotalTax)
	s.Equal("108.00", resp.TotalAmount)
	s.Equal("90.00", resp.EffectiveBaseForInclusive)
}

func (s *ChargeServiceSuite) TestRecordCharge_SequentialNumbers() {
	for range 2 {
		_, err := s.charges.RecordCharge(s.ctx, service.RecordChargeRequest{Service: "ride", BaseAmount: "10"}, testUserID)
		s.Require().NoError(err)
	}

	list, total, err := s.charges.ListCharges(s.ctx, service.ChargeFilter{Service: "RIDE"})
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Equal("CHG-20261001-00002", list[0].ChargeNo)
	s.Equal("CHG-20261001-00001", list[1].ChargeNo)
}

func (s *ChargeServiceSuite) TestRecordCharge_ConcurrentNumbersAreUnique() {
	params := s.params
	params.TxManager = &testutil.SerialTxManager{}
	charges := service.NewChargeService(params)

	const n = 10
	numbers := make([]string, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := charges.RecordCharge(s.ctx, service.RecordChargeRequest{Service: "ride", BaseAmount: "10"}, testUserID)
			s.NoError(err)
			numbers[i] = resp.ChargeNo
		}()
	}
	wg.Wait()

	s.Len(lo.Uniq(numbers), n)
	s.Contains(numbers, "CHG-20261001-00010")
	s.Len(s.charge.SequenceLocks(), n)
	s.Equal("CHG-20261001-", s.charge.SequenceLocks()[0])
}

func (s *ChargeServiceSuite) TestRecordCharge_AuditFailureDoesNotFailCharge() {
	s.audit.FailWith(errors.New("audit table locked"))

	resp, err := s.charges.RecordCharge(s.ctx, service.RecordChargeRequest{Service: "ride", BaseAmount: "10"}, testUserID)
	s.Require().NoError(err)

	got, err := s.charges.GetCharge(s.ctx, resp.ID)
	s.Require().NoError(err)
	s.Equal(resp.ChargeNo, got.ChargeNo)
}

func (s *ChargeServiceSuite) TestRecordCharge_DuplicateNumberConflicts() {
	s.charge.Err = gorm.ErrDuplicatedKey

	_, err := s.charges.RecordCharge(s.ctx, service.RecordChargeRequest{Service: "ride", BaseAmount: "10"}, testUserID)
	s.Require().Error(err)
	s.True(ierr.IsAlreadyExists(err))
	s.Equal(ierr.ErrCodeAlreadyExists, ierr.Code(err))
}

func (s *ChargeServiceSuite) TestRecordCharge_RejectsNegativeAmount() {
	_, err := s.charges.RecordCharge(s.ctx, service.RecordChargeRequest{Service: "ride", BaseAmount: "-1"}, testUserID)
	s.True(ierr.IsInvalidInput(err))

	_, total, err := s.charges.ListCharges(s.ctx, service.ChargeFilter{})
	s.Require().NoError(err)
	s.Zero(total)
}

func (s *ChargeServiceSuite) TestGetCharge_NotFound() {
	_, err := s.charges.GetCharge(s.ctx, "0e3c0f34-6a3f-4d5e-8d0e-000000000000")
	s.True(ierr.IsNotFound(err))
}

func (s *ChargeServiceSuite) TestGetAuditLogs() {
	logs, total, err := s.audits.GetAuditLogs(s.ctx, 1, 2)
	s.Require().NoError(err)
	s.EqualValues(3, total)
	s.Require().Len(logs, 2)
	s.Equal(model.ActionCreateTaxRule, logs[0].Action)
	s.Equal(testUserID, logs[0].UserID)
	s.Equal("Delivery levy", logs[0].EntityName)
}

func (s *ChargeServiceSuite) TestGetEntityHistory() {
	created, err := s.taxes.CreateTaxRule(s.ctx, service.TaxRuleRequest{Name: "Levy", TaxType: "fixed", FixedAmount: "1"}, testUserID)
	s.Require().NoError(err)
	_, err = s.taxes.ToggleTaxRuleStatus(s.ctx, created.ID, testUserID)
	s.Require().NoError(err)

	logs, total, err := s.audits.GetEntityHistory(s.ctx, created.ID, 1, 20)
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Equal(model.ActionToggleTaxRule, logs[0].Action)
	s.Equal(model.ActionCreateTaxRule, logs[1].Action)

	_, _, err = s.audits.GetEntityHistory(s.ctx, "rule-1", 1, 20)
	s.True(ierr.IsValidation(err))
}
