package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fuelstation/internal/domain"
)

type startShiftRequest struct {
	EmployeeID  uuid.UUID       `json:"employee_id"`
	OpeningCash decimal.Decimal `json:"opening_cash"`
}

type closeShiftRequest struct {
	ClosingCash decimal.Decimal `json:"closing_cash"`
}

type paymentMethodsRequest struct {
	PaymentMethods []domain.PaymentMethodEntry `json:"payment_methods"`
}

type salesTotalResponse struct {
	Total decimal.Decimal `json:"total"`
}

// ActiveShift returns the employee's open shift, or nil when there is none.
func (c *Client) ActiveShift(ctx context.Context, employeeID uuid.UUID) (*domain.Shift, error) {
	query := url.Values{}
	query.Set("employee_id", employeeID.String())
	query.Set("status", string(domain.ShiftOpen))

	var shifts []domain.Shift
	err := c.Invoke(ctx, "shifts", InvokeOptions{Method: http.MethodGet, Query: query}, &shifts)
	if err != nil {
		return nil, err
	}
	for i := range shifts {
		if shifts[i].Status == domain.ShiftOpen {
			return &shifts[i], nil
		}
	}
	return nil, nil
}

func (c *Client) StartShift(ctx context.Context, employeeID uuid.UUID, openingCash decimal.Decimal) (*domain.Shift, error) {
	var shift domain.Shift
	err := c.Invoke(ctx, "shifts", InvokeOptions{
		Method: http.MethodPost,
		Body:   startShiftRequest{EmployeeID: employeeID, OpeningCash: openingCash},
	}, &shift)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *Client) RecordPaymentMethods(ctx context.Context, shiftID uuid.UUID, entries []domain.PaymentMethodEntry) error {
	return c.Invoke(ctx, fmt.Sprintf("shifts/%s/payment-methods", shiftID), InvokeOptions{
		Method: http.MethodPost,
		Body:   paymentMethodsRequest{PaymentMethods: entries},
	}, nil)
}

func (c *Client) CloseShift(ctx context.Context, shiftID uuid.UUID, closingCash decimal.Decimal) (*domain.Shift, error) {
	var shift domain.Shift
	err := c.Invoke(ctx, fmt.Sprintf("shifts/%s/close", shiftID), InvokeOptions{
		Method: http.MethodPost,
		Body:   closeShiftRequest{ClosingCash: closingCash},
	}, &shift)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *Client) SalesTotal(ctx context.Context, shiftID uuid.UUID) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("shift_id", shiftID.String())
	query.Set("aggregate", "total")

	var resp salesTotalResponse
	if err := c.Invoke(ctx, "sales", InvokeOptions{Method: http.MethodGet, Query: query}, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.Total, nil
}
