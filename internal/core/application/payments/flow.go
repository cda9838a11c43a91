// Package payments coordinates mobile-money payment attempts against the
// gateway port. One attempt is a small state machine: initiate the STK push,
// poll for settlement on a fixed interval, and resolve to a terminal state.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/ports"
)

// State is the lifecycle position of one payment attempt.
type State int

const (
	// StateIdle means no attempt exists for the parcel.
	StateIdle State = iota

	// StateInitiating means the STK push request is in flight.
	StateInitiating

	// StatePending means the subscriber has been prompted and polling is underway.
	StatePending

	// StateCompleted means the gateway confirmed settlement. Terminal.
	StateCompleted

	// StateFailed means the gateway reported the charge declined or expired. Terminal.
	StateFailed

	// StateTimedOut means the polling ceiling elapsed without resolution. Terminal.
	StateTimedOut

	// StateErrored means initiation itself failed. Terminal.
	StateErrored
)

// String returns a short name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInitiating:
		return "initiating"
	case StatePending:
		return "pending"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateTimedOut:
		return "timed_out"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

func (s State) terminal() bool {
	switch s {
	case StateCompleted, StateFailed, StateTimedOut, StateErrored:
		return true
	default:
		return false
	}
}

var (
	// ErrAttemptInProgress is returned when a second attempt is started for a
	// parcel whose previous attempt has not yet resolved.
	ErrAttemptInProgress = errors.New("a payment attempt for this parcel is already in progress")

	// ErrFlowStopped is returned when an attempt is started after Stop.
	ErrFlowStopped = errors.New("payment flow has been stopped")

	// ErrAmountIsNotPositive is returned when an attempt is started for a
	// zero amount; the gateway rejects zero-value pushes.
	ErrAmountIsNotPositive = errors.New("payment amount must be positive")
)

const (
	// DefaultPollInterval is the fixed gap between settlement polls.
	DefaultPollInterval = 10 * time.Second

	// DefaultMaxPolls caps how many polls one attempt may schedule.
	DefaultMaxPolls = 30

	// DefaultCloseDelay is how long a completed attempt stays before the
	// auto-close signal fires.
	DefaultCloseDelay = 3 * time.Second
)

// Config carries the flow's timing knobs. Zero values fall back to the
// defaults; tests shrink them.
type Config struct {
	PollInterval time.Duration
	MaxPolls     int
	CloseDelay   time.Duration
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.MaxPolls <= 0 {
		c.MaxPolls = DefaultMaxPolls
	}
	if c.CloseDelay <= 0 {
		c.CloseDelay = DefaultCloseDelay
	}
	return c
}

// SuccessFunc runs exactly once when an attempt completes, carrying the
// gateway's result payload verbatim. Failures inside the callback do not
// reverse the completed attempt; implementations log and move on.
type SuccessFunc func(ctx context.Context, parcelID kernel.UUID, payload json.RawMessage)

// CloseFunc runs once per completed attempt after the close delay, signalling
// the payment surface to dismiss itself.
type CloseFunc func(parcelID kernel.UUID)

type attempt struct {
	parcelID          kernel.UUID
	checkoutRequestID string
	state             State
	message           string
	polls             int

	pollTimer  *time.Timer
	closeTimer *time.Timer
}

// Flow runs payment attempts, at most one in flight per parcel.
// All methods are safe for concurrent use.
type Flow struct {
	gateway   ports.PaymentGateway
	cfg       Config
	onSuccess SuccessFunc
	onClose   CloseFunc
	logger    *slog.Logger

	mu       sync.Mutex
	attempts map[kernel.UUID]*attempt
	stopped  bool
}

// NewFlow creates a payment flow over the given gateway.
// onSuccess and onClose may be nil when no coupling is wanted.
func NewFlow(
	gateway ports.PaymentGateway,
	onSuccess SuccessFunc,
	onClose CloseFunc,
	logger *slog.Logger,
	cfg Config,
) *Flow {
	return &Flow{
		gateway:   gateway,
		cfg:       cfg.withDefaults(),
		onSuccess: onSuccess,
		onClose:   onClose,
		logger:    logger.With("component", "payment_flow"),
		attempts:  make(map[kernel.UUID]*attempt),
	}
}

// Initiate starts a payment attempt for the parcel in the request.
// The phone number must be a constructed, normalized PhoneNumber. A second
// attempt while one is unresolved is rejected with ErrAttemptInProgress;
// a terminal earlier attempt is replaced.
//
// On a gateway rejection or transport failure the attempt resolves to
// Errored immediately and the per-parcel lock is released.
func (f *Flow) Initiate(ctx context.Context, req ports.STKPushRequest) error {
	if err := req.Phone.Validate(); err != nil {
		return err
	}
	if req.Amount.Amount() <= 0 {
		return ErrAmountIsNotPositive
	}

	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return ErrFlowStopped
	}
	if existing, ok := f.attempts[req.ParcelID]; ok && !existing.state.terminal() {
		f.mu.Unlock()
		return ErrAttemptInProgress
	}
	a := &attempt{parcelID: req.ParcelID, state: StateInitiating}
	f.attempts[req.ParcelID] = a
	f.mu.Unlock()

	checkoutRequestID, err := f.gateway.InitiateSTKPush(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		a.state = StateErrored
		a.message = err.Error()
		f.logger.WarnContext(ctx, "Payment initiation failed",
			"parcel_id", req.ParcelID.String(), "error", err)
		return err
	}

	a.checkoutRequestID = checkoutRequestID
	a.state = StatePending
	f.schedulePollLocked(a)

	f.logger.InfoContext(ctx, "Payment initiated",
		"parcel_id", req.ParcelID.String(), "checkout_request_id", checkoutRequestID)
	return nil
}

// State reports the attempt state for the parcel, StateIdle when none exists.
func (f *Flow) State(parcelID kernel.UUID) State {
	f.mu.Lock()
	defer f.mu.Unlock()

	if a, ok := f.attempts[parcelID]; ok {
		return a.state
	}
	return StateIdle
}

// Message returns the gateway's last human-readable message for the attempt.
func (f *Flow) Message(parcelID kernel.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if a, ok := f.attempts[parcelID]; ok {
		return a.message
	}
	return ""
}

// Stop tears the flow down: every pending poll and close timer is cancelled
// and no new attempts may start. In-flight attempts stay in their current
// state but will not advance.
func (f *Flow) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopped = true
	for _, a := range f.attempts {
		if a.pollTimer != nil {
			a.pollTimer.Stop()
			a.pollTimer = nil
		}
		if a.closeTimer != nil {
			a.closeTimer.Stop()
			a.closeTimer = nil
		}
	}
}

// schedulePollLocked arms the next poll unless the ceiling is reached.
// Callers hold f.mu.
func (f *Flow) schedulePollLocked(a *attempt) {
	if f.stopped || a.state != StatePending {
		return
	}

	if a.polls >= f.cfg.MaxPolls {
		a.state = StateTimedOut
		a.message = "payment confirmation timed out"
		f.logger.Warn("Payment polling ceiling reached",
			"parcel_id", a.parcelID.String(), "polls", a.polls)
		return
	}

	a.polls++
	a.pollTimer = time.AfterFunc(f.cfg.PollInterval, func() {
		f.poll(a.parcelID)
	})
}

func (f *Flow) poll(parcelID kernel.UUID) {
	f.mu.Lock()
	a, ok := f.attempts[parcelID]
	if !ok || f.stopped || a.state != StatePending {
		f.mu.Unlock()
		return
	}
	checkoutRequestID := a.checkoutRequestID
	f.mu.Unlock()

	ctx := context.Background()
	result, err := f.gateway.PaymentStatus(ctx, checkoutRequestID)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stopped || a.state != StatePending {
		return
	}

	if err != nil {
		// Malformed or failed poll: no state change, but the scheduled slot
		// is spent. The ceiling still applies.
		f.logger.Warn("Payment status poll failed",
			"parcel_id", parcelID.String(), "error", err)
		f.schedulePollLocked(a)
		return
	}

	a.message = result.Message

	switch result.Status {
	case ports.GatewayStatusCompleted:
		a.state = StateCompleted
		f.completeLocked(a, result.Raw)
	case ports.GatewayStatusFailed:
		a.state = StateFailed
	default:
		f.schedulePollLocked(a)
	}
}

// completeLocked fires the success callback and arms the auto-close signal.
// Runs at most once per attempt: state transitions into Completed exactly
// once under f.mu. Callers hold f.mu.
func (f *Flow) completeLocked(a *attempt, payload json.RawMessage) {
	parcelID := a.parcelID

	if f.onSuccess != nil {
		go f.onSuccess(context.Background(), parcelID, payload)
	}

	if f.onClose != nil {
		a.closeTimer = time.AfterFunc(f.cfg.CloseDelay, func() {
			f.onClose(parcelID)
		})
	}

	f.logger.Info("Payment completed", "parcel_id", parcelID.String())
}
