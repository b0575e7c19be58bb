package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "OPEN"
	ShiftClosed ShiftStatus = "CLOSED"
)

type Shift struct {
	ID          uuid.UUID           `json:"id"`
	EmployeeID  uuid.UUID           `json:"employee_id"`
	StartTime   time.Time           `json:"start_time"`
	EndTime     *time.Time          `json:"end_time"`
	OpeningCash decimal.Decimal     `json:"opening_cash"`
	ClosingCash decimal.NullDecimal `json:"closing_cash"`
	SalesTotal  decimal.Decimal     `json:"sales_total"`
	Status      ShiftStatus         `json:"status"`
}

// Clone returns a copy that shares nothing with s.
func (s *Shift) Clone() *Shift {
	if s == nil {
		return nil
	}
	c := *s
	if s.EndTime != nil {
		end := *s.EndTime
		c.EndTime = &end
	}
	return &c
}

func (s *Shift) IsOpen() bool {
	return s != nil && s.Status == ShiftOpen
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentVoucher  PaymentMethod = "voucher"
	PaymentCredit   PaymentMethod = "credit"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentVoucher, PaymentCredit:
		return true
	}
	return false
}

type PaymentMethodEntry struct {
	Method    PaymentMethod   `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
}

// CashSubtotal sums the cash entries only.
func CashSubtotal(entries []PaymentMethodEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Method == PaymentCash {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func DeclaredTotal(entries []PaymentMethodEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// Reconciliation compares the declared breakdown with the recorded sales
// total. It is advisory: a non-zero difference never blocks a close.
type Reconciliation struct {
	Expected   decimal.Decimal `json:"expected"`
	Declared   decimal.Decimal `json:"declared"`
	Cash       decimal.Decimal `json:"cash"`
	Difference decimal.Decimal `json:"difference"`
	Balanced   bool            `json:"balanced"`
}

func Reconcile(shift *Shift, entries []PaymentMethodEntry) Reconciliation {
	expected := decimal.Zero
	if shift != nil {
		expected = shift.SalesTotal
	}
	declared := DeclaredTotal(entries)
	diff := declared.Sub(expected)
	return Reconciliation{
		Expected:   expected,
		Declared:   declared,
		Cash:       CashSubtotal(entries),
		Difference: diff,
		Balanced:   diff.IsZero(),
	}
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

type Preferences struct {
	UserID           uuid.UUID `json:"-"                 db:"user_id"`
	Theme            Theme     `json:"theme"             db:"theme"`
	SidebarCollapsed bool      `json:"sidebar_collapsed" db:"sidebar_collapsed"`
	UpdatedAt        time.Time `json:"updated_at"        db:"updated_at"`
}

func DefaultPreferences(userID uuid.UUID) *Preferences {
	return &Preferences{
		UserID: userID,
		Theme:  ThemeSystem,
	}
}
