package shiftservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/metrics"
	"github.com/GlebRadaev/fuelstation/internal/platform"
)

type Remote interface {
	ActiveShift(ctx context.Context, employeeID uuid.UUID) (*domain.Shift, error)
	StartShift(ctx context.Context, employeeID uuid.UUID, openingCash decimal.Decimal) (*domain.Shift, error)
	RecordPaymentMethods(ctx context.Context, shiftID uuid.UUID, entries []domain.PaymentMethodEntry) error
	CloseShift(ctx context.Context, shiftID uuid.UUID, closingCash decimal.Decimal) (*domain.Shift, error)
	SalesTotal(ctx context.Context, shiftID uuid.UUID) (decimal.Decimal, error)
}

type SnapshotRepo interface {
	Find(ctx context.Context, employeeID uuid.UUID) (*domain.Shift, error)
	Save(ctx context.Context, shift *domain.Shift) error
	Delete(ctx context.Context, employeeID uuid.UUID) error
}

type Connectivity interface {
	Online() bool
}

var (
	ErrInvalidUser      = errors.New("user id is required")
	ErrInvalidAmount    = errors.New("amount must not be negative")
	ErrUnauthorized     = errors.New("session is not authorized")
	ErrShiftAlreadyOpen = errors.New("shift already open")
	ErrNoActiveShift    = errors.New("no active shift")
	ErrOffline          = errors.New("no internet connection")
	ErrNetwork          = errors.New("network error, check your connection")
	ErrRejected         = errors.New("rejected by platform")
)

// CloseError describes why a shift could not be closed. Cause is one of
// ErrNoActiveShift, ErrOffline, ErrNetwork or ErrRejected.
type CloseError struct {
	Cause   error
	Message string
	Err     error
}

func (e *CloseError) Error() string {
	return e.Message
}

func (e *CloseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Cause}
	}
	return []error{e.Cause, e.Err}
}

type CheckResult struct {
	Shift *domain.Shift
	// Degraded is set when the shift came from memory or the snapshot
	// because the platform could not answer.
	Degraded bool
	Offline  bool
}

type state int

const (
	stateNone state = iota + 1
	stateOpen
	stateClosed
)

type entry struct {
	state state
	shift *domain.Shift
	// recorded is set once the payment breakdown of shift is stored on the
	// platform; entries are immutable there, so a retried close skips it.
	recorded bool
}

// Service owns the active shift of every employee. Callers only ever get copies.
type Service struct {
	remote    Remote
	snapshots SnapshotRepo
	conn      Connectivity

	mu      sync.RWMutex
	entries map[uuid.UUID]entry
}

func New(remote Remote, snapshots SnapshotRepo, conn Connectivity) *Service {
	return &Service{
		remote:    remote,
		snapshots: snapshots,
		conn:      conn,
		entries:   make(map[uuid.UUID]entry),
	}
}

func (s *Service) CheckActiveShift(ctx context.Context, userID uuid.UUID, forceRefresh bool) (CheckResult, error) {
	if userID == uuid.Nil {
		zap.L().Error("check active shift without user id")
		return CheckResult{}, ErrInvalidUser
	}

	if !forceRefresh {
		if e, ok := s.entry(userID); ok && e.state != stateClosed {
			return CheckResult{Shift: e.shift}, nil
		}
	}

	if s.conn != nil && !s.conn.Online() {
		return s.fallback(ctx, userID, true), nil
	}

	shift, err := s.remote.ActiveShift(ctx, userID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return CheckResult{}, ctxErr
		}
		if platform.IsUnauthorized(err) {
			return CheckResult{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		offline := errors.Is(err, platform.ErrOffline) || (s.conn != nil && !s.conn.Online())
		zap.L().Warn("active shift check degraded",
			zap.String("user_id", userID.String()), zap.Bool("offline", offline), zap.Error(err))
		return s.fallback(ctx, userID, offline), nil
	}

	if shift == nil || !shift.IsOpen() {
		s.store(userID, entry{state: stateNone})
		if s.snapshots != nil {
			if err := s.snapshots.Delete(ctx, userID); err != nil {
				zap.L().Error("can't drop shift snapshot", zap.String("user_id", userID.String()), zap.Error(err))
			}
		}
		return CheckResult{}, nil
	}

	s.refresh(userID, shift)
	s.saveSnapshot(ctx, shift)
	return CheckResult{Shift: shift.Clone()}, nil
}

func (s *Service) StartShift(ctx context.Context, userID uuid.UUID, openingCash decimal.Decimal) (*domain.Shift, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUser
	}
	if openingCash.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if e, ok := s.entry(userID); ok && e.state == stateOpen {
		zap.L().Info("shift already open", zap.String("user_id", userID.String()), zap.String("shift_id", e.shift.ID.String()))
		return nil, ErrShiftAlreadyOpen
	}

	shift, err := s.remote.StartShift(ctx, userID, openingCash)
	if err != nil {
		return nil, translate(err)
	}
	if shift.EmployeeID == uuid.Nil {
		shift.EmployeeID = userID
	}
	if shift.Status == "" {
		shift.Status = domain.ShiftOpen
	}

	s.store(userID, entry{state: stateOpen, shift: shift.Clone()})
	s.saveSnapshot(ctx, shift)
	zap.L().Info("shift started", zap.String("user_id", userID.String()), zap.String("shift_id", shift.ID.String()))
	return shift.Clone(), nil
}

// EndShift records the payment methods and closes the user's open shift.
// On failure the shift stays open.
func (s *Service) EndShift(ctx context.Context, userID uuid.UUID, cashTotal decimal.Decimal, paymentMethods []domain.PaymentMethodEntry) (*domain.Shift, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUser
	}
	e, ok := s.entry(userID)
	if !ok || e.state != stateOpen {
		metrics.ShiftCloses.WithLabelValues("no_shift").Inc()
		return nil, &CloseError{Cause: ErrNoActiveShift, Message: "No active shift to close"}
	}
	shiftID := e.shift.ID

	if e.recorded {
		zap.L().Info("payment methods already recorded, closing only",
			zap.String("user_id", userID.String()), zap.String("shift_id", shiftID.String()))
	} else {
		if err := s.remote.RecordPaymentMethods(ctx, shiftID, paymentMethods); err != nil {
			return nil, s.closeFailed(userID, shiftID, err)
		}
		s.markRecorded(userID, shiftID)
	}
	closed, err := s.remote.CloseShift(ctx, shiftID, cashTotal)
	if err != nil {
		return nil, s.closeFailed(userID, shiftID, err)
	}

	if closed == nil {
		closed = e.shift
	}
	closed.Status = domain.ShiftClosed
	if !closed.ClosingCash.Valid {
		closed.ClosingCash = decimal.NewNullDecimal(cashTotal)
	}
	if closed.EndTime == nil {
		now := time.Now()
		closed.EndTime = &now
	}
	if closed.EmployeeID == uuid.Nil {
		closed.EmployeeID = userID
	}

	s.store(userID, entry{state: stateClosed, shift: closed.Clone()})
	if s.snapshots != nil {
		if err := s.snapshots.Delete(ctx, userID); err != nil {
			zap.L().Error("can't drop shift snapshot", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	metrics.ShiftCloses.WithLabelValues("ok").Inc()
	zap.L().Info("shift closed", zap.String("user_id", userID.String()), zap.String("shift_id", shiftID.String()),
		zap.String("closing_cash", cashTotal.String()))
	return closed.Clone(), nil
}

// UpdateShiftSalesTotal refreshes the running total of an open shift.
// Errors are logged and dropped.
func (s *Service) UpdateShiftSalesTotal(ctx context.Context, shiftID uuid.UUID) {
	userID, ok := s.ownerOf(shiftID)
	if !ok {
		zap.L().Debug("sales total for unknown shift", zap.String("shift_id", shiftID.String()))
		return
	}

	total, err := s.remote.SalesTotal(ctx, shiftID)
	if err != nil {
		metrics.SalesSyncUpdates.WithLabelValues("error").Inc()
		zap.L().Warn("can't refresh sales total", zap.String("shift_id", shiftID.String()), zap.Error(err))
		return
	}

	s.mu.Lock()
	e, ok := s.entries[userID]
	if !ok || e.state != stateOpen || e.shift.ID != shiftID {
		s.mu.Unlock()
		return
	}
	updated := e.shift.Clone()
	updated.SalesTotal = total
	e.shift = updated.Clone()
	s.entries[userID] = e
	s.mu.Unlock()

	s.saveSnapshot(ctx, updated)
	metrics.SalesSyncUpdates.WithLabelValues("ok").Inc()
}

// OpenShifts lists every shift currently known to be open.
func (s *Service) OpenShifts() []domain.Shift {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shifts := make([]domain.Shift, 0, len(s.entries))
	for _, e := range s.entries {
		if e.state == stateOpen {
			shifts = append(shifts, *e.shift.Clone())
		}
	}
	return shifts
}

// Current reports the in-memory view only; known is false until a check ran.
func (s *Service) Current(userID uuid.UUID) (shift *domain.Shift, known bool) {
	e, ok := s.entry(userID)
	if !ok {
		return nil, false
	}
	if e.state != stateOpen {
		return nil, true
	}
	return e.shift, true
}

// LastKnown returns the open shift from memory or, failing that, the snapshot.
func (s *Service) LastKnown(ctx context.Context, userID uuid.UUID) (*domain.Shift, error) {
	if e, ok := s.entry(userID); ok {
		if e.state == stateOpen {
			return e.shift, nil
		}
		return nil, nil
	}
	if s.snapshots == nil {
		return nil, nil
	}
	shift, err := s.snapshots.Find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !shift.IsOpen() {
		return nil, nil
	}
	return shift, nil
}

func (s *Service) fallback(ctx context.Context, userID uuid.UUID, offline bool) CheckResult {
	shift, err := s.LastKnown(ctx, userID)
	if err != nil {
		zap.L().Error("can't read shift snapshot", zap.String("user_id", userID.String()), zap.Error(err))
	}
	return CheckResult{Shift: shift, Degraded: true, Offline: offline}
}

func (s *Service) closeFailed(userID, shiftID uuid.UUID, err error) error {
	cerr := closeError(err)
	metrics.ShiftCloses.WithLabelValues(resultLabel(cerr.Cause)).Inc()
	zap.L().Error("can't close shift", zap.String("user_id", userID.String()),
		zap.String("shift_id", shiftID.String()), zap.Error(err))
	return cerr
}

func (s *Service) saveSnapshot(ctx context.Context, shift *domain.Shift) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, shift); err != nil {
		zap.L().Error("can't save shift snapshot", zap.String("shift_id", shift.ID.String()), zap.Error(err))
	}
}

// entry returns a copy of the stored entry; its shift is cloned under the lock.
func (s *Service) entry(userID uuid.UUID) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[userID]
	e.shift = e.shift.Clone()
	return e, ok
}

// refresh stores an open shift, keeping the recorded flag while it is the
// same shift.
func (s *Service) refresh(userID uuid.UUID, shift *domain.Shift) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.entries[userID]
	recorded := prev.recorded && prev.shift != nil && prev.shift.ID == shift.ID
	s.entries[userID] = entry{state: stateOpen, shift: shift.Clone(), recorded: recorded}
}

func (s *Service) markRecorded(userID, shiftID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if ok && e.state == stateOpen && e.shift.ID == shiftID {
		e.recorded = true
		s.entries[userID] = e
	}
}

func (s *Service) store(userID uuid.UUID, e entry) {
	s.mu.Lock()
	s.entries[userID] = e
	s.mu.Unlock()
}

func (s *Service) ownerOf(shiftID uuid.UUID) (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for userID, e := range s.entries {
		if e.state == stateOpen && e.shift.ID == shiftID {
			return userID, true
		}
	}
	return uuid.Nil, false
}

func translate(err error) error {
	var perr *platform.Error
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, platform.ErrOffline):
		return ErrOffline
	case errors.Is(err, platform.ErrNetwork):
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	case platform.IsUnauthorized(err):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.As(err, &perr):
		return fmt.Errorf("%w: %w", ErrRejected, perr)
	}
	return err
}

func closeError(err error) *CloseError {
	var perr *platform.Error
	switch {
	case errors.Is(err, platform.ErrOffline):
		return &CloseError{Cause: ErrOffline, Message: "Cannot close shift while offline", Err: err}
	case errors.Is(err, platform.ErrNetwork):
		return &CloseError{Cause: ErrNetwork, Message: "Network error, check your connection", Err: err}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &CloseError{Cause: ErrNetwork, Message: "Request was interrupted", Err: err}
	case errors.As(err, &perr):
		return &CloseError{Cause: ErrRejected, Message: perr.Message, Err: err}
	}
	return &CloseError{Cause: ErrRejected, Message: err.Error(), Err: err}
}

func resultLabel(cause error) string {
	switch {
	case errors.Is(cause, ErrOffline):
		return "offline"
	case errors.Is(cause, ErrNetwork):
		return "network"
	case errors.Is(cause, ErrNoActiveShift):
		return "no_shift"
	}
	return "rejected"
}
