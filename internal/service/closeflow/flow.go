// Package closeflow drives the shift close page: the initial load with its
// retry budget, offline handling, redirects, periodic re-validation and the
// reconciliation submit.
package closeflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelstation/internal/config"
	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/metrics"
	"github.com/GlebRadaev/fuelstation/internal/service/shiftservice"
	"github.com/GlebRadaev/fuelstation/pkg/async"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
)

// ShiftListPath is where the page goes once there is nothing left to close.
const ShiftListPath = "/shifts"

type Accessor interface {
	CheckActiveShift(ctx context.Context, userID uuid.UUID, forceRefresh bool) (shiftservice.CheckResult, error)
	EndShift(ctx context.Context, userID uuid.UUID, cashTotal decimal.Decimal, paymentMethods []domain.PaymentMethodEntry) (*domain.Shift, error)
	Current(userID uuid.UUID) (*domain.Shift, bool)
	LastKnown(ctx context.Context, userID uuid.UUID) (*domain.Shift, error)
}

type Connectivity interface {
	Online() bool
}

// Navigator is told when a flow sends the page elsewhere. It is called with
// the flow lock held and must not call back into the flow.
type Navigator interface {
	Navigate(userID uuid.UUID, to string)
}

type Status string

const (
	StatusLoading    Status = "loading"
	StatusReady      Status = "ready"
	StatusNoShift    Status = "no_shift"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

type Alert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type State struct {
	Status         Status                 `json:"status"`
	Shift          *domain.Shift          `json:"shift,omitempty"`
	Alert          *Alert                 `json:"alert,omitempty"`
	Offline        bool                   `json:"offline"`
	Reconciliation *domain.Reconciliation `json:"reconciliation,omitempty"`
	RedirectTo     string                 `json:"redirect_to,omitempty"`
}

var (
	ErrNoShift = errors.New("no shift loaded")

	errDegraded = errors.New("shift check degraded")
)

type Flow struct {
	userID   uuid.UUID
	accessor Accessor
	conn     Connectivity
	nav      Navigator
	timings  config.Timings

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	// left is closed once the page was sent elsewhere.
	left chan struct{}

	mu        sync.Mutex
	token     string
	state     State
	closed    bool
	navigated bool
}

func NewFlow(userID uuid.UUID, accessor Accessor, conn Connectivity, nav Navigator, timings config.Timings) *Flow {
	ctx, cancel := context.WithCancel(context.Background())
	return &Flow{
		userID:   userID,
		accessor: accessor,
		conn:     conn,
		nav:      nav,
		timings:  timings,
		ctx:      ctx,
		cancel:   cancel,
		left:     make(chan struct{}),
		state:    State{Status: StatusLoading},
	}
}

// Start kicks off the initial load and the re-validation loop.
func (f *Flow) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.wg.Add(2)
	go f.load()
	go f.revalidateLoop()
}

// Close cancels in-flight calls, stops every timer and waits for the flow's
// goroutines. It is safe to call more than once.
func (f *Flow) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()

	f.cancel()
	f.wg.Wait()
}

// SetToken sets the session token forwarded on the flow's platform calls.
// An empty token keeps the current one.
func (f *Flow) SetToken(token string) {
	if token == "" {
		return
	}
	f.mu.Lock()
	f.token = token
	f.mu.Unlock()
}

// callCtx is the flow context carrying the session token. f.mu must be held.
func (f *Flow) callCtx() context.Context {
	if f.token == "" {
		return f.ctx
	}
	return auth.WithToken(f.ctx, f.token)
}

func (f *Flow) sessionCtx() context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCtx()
}

// Terminated reports whether the flow was closed or already sent the page away.
func (f *Flow) Terminated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed || f.navigated
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

// Preview reconciles entries against the loaded shift without submitting.
func (f *Flow) Preview(entries []domain.PaymentMethodEntry) (domain.Reconciliation, error) {
	if err := Validate(entries); err != nil {
		return domain.Reconciliation{}, err
	}
	f.mu.Lock()
	shift := f.state.Shift.Clone()
	f.mu.Unlock()
	if shift == nil {
		return domain.Reconciliation{}, ErrNoShift
	}
	return domain.Reconcile(shift, entries), nil
}

// Submit closes the shift with the given breakdown and returns the resulting
// state. The session token of ctx is used for the close; the call itself is
// bound to the flow and cancelled when the page is left. A submit while one
// is running, after success, or before the shift has loaded is ignored and
// returns no error. Any failure is also reported as the state's alert.
func (f *Flow) Submit(ctx context.Context, entries []domain.PaymentMethodEntry) (State, error) {
	f.mu.Lock()
	if token := auth.TokenFromContext(ctx); token != "" {
		f.token = token
	}
	switch f.state.Status {
	case StatusLoading, StatusSubmitting, StatusSuccess:
		zap.L().Debug("close submit ignored", zap.String("user_id", f.userID.String()), zap.String("status", string(f.state.Status)))
		defer f.mu.Unlock()
		return f.snapshot(), nil
	}
	if f.closed {
		defer f.mu.Unlock()
		return f.snapshot(), ErrNoFlow
	}
	if f.state.Status == StatusNoShift {
		f.state.Alert = &Alert{Title: "No active shift", Description: "There is no open shift to close"}
		defer f.mu.Unlock()
		return f.snapshot(), shiftservice.ErrNoActiveShift
	}
	if err := Validate(entries); err != nil {
		f.state.Alert = &Alert{Title: "Invalid payment methods", Description: err.Error()}
		defer f.mu.Unlock()
		return f.snapshot(), err
	}

	cash := domain.CashSubtotal(entries)
	recon := domain.Reconcile(f.state.Shift, entries)
	f.state.Reconciliation = &recon
	f.state.Status = StatusSubmitting
	f.state.Alert = nil
	callCtx := f.callCtx()
	f.wg.Add(1)
	f.mu.Unlock()
	defer f.wg.Done()

	closed, err := async.WithTimeout(callCtx, f.timings.SubmitTimeout, func(ctx context.Context) (*domain.Shift, error) {
		return f.accessor.EndShift(ctx, f.userID, cash, entries)
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return f.snapshot(), ErrNoFlow
	}

	if err != nil {
		f.submitFailed(err)
		return f.snapshot(), err
	}

	f.state.Status = StatusSuccess
	f.state.Shift = closed
	f.state.Offline = false
	f.state.Alert = &Alert{Title: "Shift closed", Description: "The shift was reconciled and closed."}
	zap.L().Info("shift close flow finished", zap.String("user_id", f.userID.String()), zap.String("shift_id", closed.ID.String()))
	f.after(f.timings.SuccessRedirectDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.navigate(ShiftListPath)
	})
	return f.snapshot(), nil
}

func (f *Flow) submitFailed(err error) {
	f.state.Status = StatusError
	var cerr *shiftservice.CloseError
	switch {
	case errors.Is(err, async.ErrTimeout):
		metrics.ShiftCloses.WithLabelValues("timeout").Inc()
		f.state.Alert = &Alert{Title: "Request timed out", Description: "The platform did not answer in time. Check the shift list before trying again."}
	case errors.Is(err, shiftservice.ErrOffline):
		f.state.Offline = true
		f.state.Alert = &Alert{Title: "No internet connection", Description: "Cannot close shift while offline"}
	case errors.Is(err, shiftservice.ErrNetwork):
		f.state.Alert = &Alert{Title: "Network error", Description: "Network error, check your connection"}
	case errors.Is(err, shiftservice.ErrNoActiveShift):
		f.state.Alert = &Alert{Title: "No active shift", Description: "There is no open shift to close"}
	case errors.As(err, &cerr):
		f.state.Alert = &Alert{Title: "Shift close rejected", Description: cerr.Message}
	default:
		f.state.Alert = &Alert{Title: "Could not close shift", Description: err.Error()}
	}
	zap.L().Warn("shift close failed", zap.String("user_id", f.userID.String()), zap.Error(err))
}

func (f *Flow) load() {
	defer f.wg.Done()

	res, err := async.WithTimeout(f.sessionCtx(), f.timings.LoadTimeout, func(ctx context.Context) (shiftservice.CheckResult, error) {
		backoff := async.Linear(f.timings.LoadRetryStep, f.timings.LoadRetries)
		return async.WithRetry(ctx, backoff, f.checkOnce)
	})
	if errors.Is(err, errDegraded) {
		err = nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.ctx.Err() != nil {
		return
	}

	switch {
	case errors.Is(err, async.ErrTimeout):
		f.state.Status = StatusError
		f.state.Alert = &Alert{Title: "Loading timed out", Description: "The shift could not be loaded in time. Try again."}
	case errors.Is(err, shiftservice.ErrUnauthorized):
		f.state.Status = StatusError
		f.state.Alert = &Alert{Title: "Session expired", Description: "Sign in again to close the shift."}
	case err != nil:
		f.state.Status = StatusError
		f.state.Alert = &Alert{Title: "Could not load shift", Description: err.Error()}
	case res.Shift != nil:
		f.state.Status = StatusReady
		f.state.Shift = res.Shift
		f.state.Offline = res.Offline
	case res.Offline:
		f.state.Status = StatusError
		f.state.Offline = true
		f.state.Alert = &Alert{Title: "No internet connection", Description: "Cannot close shift while offline"}
	case res.Degraded:
		f.state.Status = StatusError
		f.state.Alert = &Alert{Title: "Network error", Description: "Network error, check your connection"}
	default:
		f.state.Status = StatusNoShift
		f.after(f.timings.AbsentRedirectDelay, f.redirectIfAbsent)
	}
	if err != nil {
		zap.L().Warn("close flow load failed", zap.String("user_id", f.userID.String()), zap.Error(err))
	}
}

// checkOnce is one load attempt. Offline reads the last-known shift instead of
// asking the platform; a degraded answer while online (a network or platform
// failure) is retried.
func (f *Flow) checkOnce(ctx context.Context) (shiftservice.CheckResult, error) {
	if f.conn != nil && !f.conn.Online() {
		shift, err := f.accessor.LastKnown(ctx, f.userID)
		if err != nil {
			zap.L().Error("can't read last known shift", zap.String("user_id", f.userID.String()), zap.Error(err))
		}
		return shiftservice.CheckResult{Shift: shift, Degraded: true, Offline: true}, nil
	}

	res, err := f.accessor.CheckActiveShift(ctx, f.userID, false)
	if err != nil {
		return res, err
	}
	if res.Degraded && !res.Offline {
		return res, async.Retryable(errDegraded)
	}
	return res, nil
}

func (f *Flow) redirectIfAbsent() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Status != StatusNoShift {
		return
	}
	if shift, _ := f.accessor.Current(f.userID); shift != nil {
		f.state.Status = StatusReady
		f.state.Shift = shift
		return
	}
	f.navigate(ShiftListPath)
}

func (f *Flow) revalidateLoop() {
	defer f.wg.Done()
	if f.timings.RevalidateInterval <= 0 {
		return
	}

	ticker := time.NewTicker(f.timings.RevalidateInterval)
	defer ticker.Stop()
	for {
		select {
		case <-f.ctx.Done():
			return
		case <-f.left:
			return
		case <-ticker.C:
			f.revalidate()
		}
	}
}

func (f *Flow) revalidate() {
	if !f.revalidating() {
		return
	}

	res, err := f.accessor.CheckActiveShift(f.sessionCtx(), f.userID, true)
	if err != nil {
		zap.L().Debug("close flow revalidation failed", zap.String("user_id", f.userID.String()), zap.Error(err))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || !f.revalidatingLocked() {
		return
	}
	f.state.Offline = res.Offline
	switch {
	case res.Shift != nil:
		// A load that failed without a shift recovers; a failed submit keeps its alert.
		if f.state.Status == StatusNoShift || (f.state.Status == StatusError && f.state.Shift == nil) {
			f.state.Status = StatusReady
			f.state.Alert = nil
		}
		f.state.Shift = res.Shift
	case !res.Degraded:
		f.state.Status = StatusNoShift
		f.state.Shift = nil
		f.navigate(ShiftListPath)
	}
}

func (f *Flow) revalidating() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revalidatingLocked()
}

func (f *Flow) revalidatingLocked() bool {
	if f.navigated {
		return false
	}
	switch f.state.Status {
	case StatusLoading, StatusSubmitting, StatusSuccess:
		return false
	}
	return true
}

// navigate sends the page away exactly once. f.mu must be held.
func (f *Flow) navigate(to string) {
	if f.navigated || f.closed {
		return
	}
	f.navigated = true
	close(f.left)
	f.state.RedirectTo = to
	if f.nav != nil {
		f.nav.Navigate(f.userID, to)
	}
}

// after runs fn once d has passed unless the flow is closed first. f.mu must
// be held.
func (f *Flow) after(d time.Duration, fn func()) {
	if f.closed {
		return
	}
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-f.ctx.Done():
		case <-timer.C:
			fn()
		}
	}()
}

// snapshot copies the state. f.mu must be held.
func (f *Flow) snapshot() State {
	s := f.state
	s.Shift = f.state.Shift.Clone()
	if f.state.Alert != nil {
		alert := *f.state.Alert
		s.Alert = &alert
	}
	if f.state.Reconciliation != nil {
		recon := *f.state.Reconciliation
		s.Reconciliation = &recon
	}
	return s
}
