package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fuelstation/internal/domain"
)

type ShiftResponseDTO struct {
	ID          uuid.UUID           `json:"id" swaggertype:"string" example:"5b2e7d6a-3c44-4b1e-9d0e-2f7c1a9b8e11"`
	EmployeeID  uuid.UUID           `json:"employee_id" swaggertype:"string" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	StartTime   time.Time           `json:"start_time" example:"2024-05-14T06:00:00Z"`
	EndTime     *time.Time          `json:"end_time,omitempty" example:"2024-05-14T18:00:00Z"`
	OpeningCash decimal.Decimal     `json:"opening_cash" swaggertype:"string" example:"1000"`
	ClosingCash decimal.NullDecimal `json:"closing_cash" swaggertype:"string" example:"1500"`
	SalesTotal  decimal.Decimal     `json:"sales_total" swaggertype:"string" example:"2500"`
	Status      string              `json:"status" example:"OPEN"`
}

func NewShiftResponse(s *domain.Shift) *ShiftResponseDTO {
	if s == nil {
		return nil
	}
	return &ShiftResponseDTO{
		ID:          s.ID,
		EmployeeID:  s.EmployeeID,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		OpeningCash: s.OpeningCash,
		ClosingCash: s.ClosingCash,
		SalesTotal:  s.SalesTotal,
		Status:      string(s.Status),
	}
}

type ActiveShiftResponseDTO struct {
	Shift    *ShiftResponseDTO `json:"shift"`
	Degraded bool              `json:"degraded" example:"false"`
	Offline  bool              `json:"offline" example:"false"`
}

type StartShiftRequestDTO struct {
	OpeningCash decimal.Decimal `json:"opening_cash" swaggertype:"string" example:"1000"`
}

type PaymentMethodDTO struct {
	Method    string          `json:"method" example:"cash"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"1500"`
	Reference string          `json:"reference,omitempty" example:"terminal 2"`
}

type CloseShiftRequestDTO struct {
	PaymentMethods []PaymentMethodDTO `json:"payment_methods"`
}

func (r CloseShiftRequestDTO) Entries() []domain.PaymentMethodEntry {
	entries := make([]domain.PaymentMethodEntry, 0, len(r.PaymentMethods))
	for _, pm := range r.PaymentMethods {
		entries = append(entries, domain.PaymentMethodEntry{
			Method:    domain.PaymentMethod(pm.Method),
			Amount:    pm.Amount,
			Reference: pm.Reference,
		})
	}
	return entries
}

type ReconciliationResponseDTO struct {
	Expected   decimal.Decimal `json:"expected" swaggertype:"string" example:"2500"`
	Declared   decimal.Decimal `json:"declared" swaggertype:"string" example:"2500"`
	Cash       decimal.Decimal `json:"cash" swaggertype:"string" example:"1500"`
	Difference decimal.Decimal `json:"difference" swaggertype:"string" example:"0"`
	Balanced   bool            `json:"balanced" example:"true"`
}

func NewReconciliationResponse(r domain.Reconciliation) ReconciliationResponseDTO {
	return ReconciliationResponseDTO(r)
}
