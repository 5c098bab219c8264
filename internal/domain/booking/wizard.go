package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
)

type Outcome string

const (
	OutcomeIdle       Outcome = "idle"
	OutcomeSubmitting Outcome = "submitting"
	OutcomeSucceeded  Outcome = "succeeded"
	OutcomeFailed     Outcome = "failed"
)

var (
	ErrAtFirstStep      = errors.New("already at the first step")
	ErrAdvanceOnReview  = errors.New("review is the last step, confirm instead")
	ErrNotOnReview      = errors.New("confirm is only available on the review step")
	ErrSubmitting       = errors.New("a submission is already in progress")
	ErrAlreadySubmitted = errors.New("booking has already been submitted")
	ErrClosed           = errors.New("booking session is closed")
	ErrSubmitTimeout    = errors.New("booking submission timed out")
	ErrNoDisplayDelay   = errors.New("success display delay must be positive")
)

type Services struct {
	Clock  clock.Clock
	Venues VenueLookup
}

type Policy struct {
	Location            *time.Location
	SubmitTimeout       time.Duration
	SuccessDisplayDelay time.Duration
}

// Receipt is emitted once per wizard when a submission succeeds.
type Receipt struct {
	BookingID   string
	Draft       Draft
	SubmittedAt time.Time
	// DisplayFor is how long the success message stays up before the caller closes the wizard.
	DisplayFor time.Duration
}

// State is a consistent snapshot of a wizard.
type State struct {
	Venue        *venue.Venue
	Step         Step
	Outcome      Outcome
	Fields       Fields
	TotalPrice   venue.Money
	DurationDays int
	LastError    error
	Receipt      *Receipt
	Closed       bool
}

// Wizard drives one booking attempt through its steps. All methods are safe
// for concurrent use; at most one submission is in flight at a time.
type Wizard struct {
	mu      sync.Mutex
	venue   *venue.Venue
	fields  Fields
	step    Step
	outcome Outcome
	lastErr error
	receipt *Receipt
	closed  bool

	submitter  Submitter
	services   Services
	policy     Policy
	onComplete func(Receipt)
}

func NewWizard(v *venue.Venue, submitter Submitter, services Services, policy Policy, onComplete func(Receipt)) (*Wizard, error) {
	if v == nil {
		return nil, errs.Mark(errs.New("venue is required"), errs.ErrValidation)
	}
	if policy.SuccessDisplayDelay <= 0 {
		return nil, ErrNoDisplayDelay
	}
	if submitter == nil || services.Venues == nil {
		return nil, errs.New("booking wizard requires a submitter and a venue lookup")
	}
	if services.Clock == nil {
		services.Clock = clock.NewRealClock()
	}
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	return &Wizard{
		venue:      v,
		step:       StepEventDetails,
		outcome:    OutcomeIdle,
		submitter:  submitter,
		services:   services,
		policy:     policy,
		onComplete: onComplete,
	}, nil
}

func (w *Wizard) today() Date {
	return DateOf(w.services.Clock.Now(), w.policy.Location)
}

// guard rejects input while submitting, after success and after close.
func (w *Wizard) guard() error {
	switch {
	case w.closed:
		return errs.Mark(ErrClosed, errs.ErrConflict)
	case w.outcome == OutcomeSubmitting:
		return errs.Mark(ErrSubmitting, errs.ErrConflict)
	case w.outcome == OutcomeSucceeded:
		return errs.Mark(ErrAlreadySubmitted, errs.ErrConflict)
	}
	return nil
}

// settle clears a previous failure once the user changes something.
func (w *Wizard) settle() {
	if w.outcome == OutcomeFailed {
		w.outcome = OutcomeIdle
		w.lastErr = nil
	}
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := State{
		Venue:      w.venue,
		Step:       w.step,
		Outcome:    w.outcome,
		Fields:     w.fields,
		TotalPrice: TotalPrice(w.venue, w.fields.StartDate, w.fields.EndDate),
		LastError:  w.lastErr,
		Closed:     w.closed,
	}
	if dates, err := NewDateRange(w.fields.StartDate, w.fields.EndDate); err == nil {
		s.DurationDays = dates.DurationDays()
	}
	if w.receipt != nil {
		r := *w.receipt
		s.Receipt = &r
	}
	return s
}

// TotalPrice is recomputed from the current fields on every call.
func (w *Wizard) TotalPrice() venue.Money {
	w.mu.Lock()
	defer w.mu.Unlock()
	return TotalPrice(w.venue, w.fields.StartDate, w.fields.EndDate)
}

func (w *Wizard) Update(p Patch) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(); err != nil {
		return err
	}
	w.fields.Apply(p)
	w.settle()
	return nil
}

// Advance moves forward only when the current step validates.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(); err != nil {
		return err
	}
	if w.step.IsLast() {
		return errs.Mark(ErrAdvanceOnReview, errs.ErrConflict)
	}
	if err := ValidateStep(w.step, w.fields, w.venue, w.today()); err != nil {
		return err
	}
	w.step++
	w.settle()
	return nil
}

// Retreat moves back one step and keeps every entered value.
func (w *Wizard) Retreat() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(); err != nil {
		return err
	}
	if w.step.IsFirst() {
		return errs.Mark(ErrAtFirstStep, errs.ErrConflict)
	}
	w.step--
	w.settle()
	return nil
}

// Confirm re-validates against a fresh copy of the venue and submits.
// On failure the fields and step are kept so Confirm can be retried.
func (w *Wizard) Confirm(ctx context.Context) (Receipt, error) {
	w.mu.Lock()
	if err := w.guard(); err != nil {
		w.mu.Unlock()
		return Receipt{}, err
	}
	if !w.step.IsLast() {
		w.mu.Unlock()
		return Receipt{}, errs.Mark(ErrNotOnReview, errs.ErrConflict)
	}
	w.outcome = OutcomeSubmitting
	w.lastErr = nil
	fields := w.fields
	venueID := w.venue.ID()
	w.mu.Unlock()

	if w.policy.SubmitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.policy.SubmitTimeout)
		defer cancel()
	}

	fresh, draft, conf, err := w.submit(ctx, venueID, fields)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return Receipt{}, errs.Mark(ErrClosed, errs.ErrConflict)
	}
	if fresh != nil {
		w.venue = fresh
	}

	var vErr *ValidationError
	switch {
	case err != nil && errs.As(err, &vErr):
		// stale input: send the user back to the step that no longer holds
		w.step = vErr.Step
		w.outcome = OutcomeIdle
		w.mu.Unlock()
		return Receipt{}, err
	case err != nil:
		w.outcome = OutcomeFailed
		w.lastErr = err
		w.mu.Unlock()
		return Receipt{}, err
	}

	receipt := Receipt{
		BookingID:   conf.BookingID,
		Draft:       draft,
		SubmittedAt: w.services.Clock.Now(),
		DisplayFor:  w.policy.SuccessDisplayDelay,
	}
	w.outcome = OutcomeSucceeded
	w.receipt = &receipt
	w.fields = Fields{}
	w.step = StepEventDetails
	onComplete := w.onComplete
	w.mu.Unlock()

	if onComplete != nil {
		onComplete(receipt)
	}
	return receipt, nil
}

func (w *Wizard) submit(ctx context.Context, id venue.ID, fields Fields) (*venue.Venue, Draft, Confirmation, error) {
	fresh, err := w.services.Venues.GetVenue(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, Draft{}, Confirmation{}, errs.Wrap(err, "venue no longer available")
		}
		return nil, Draft{}, Confirmation{}, errs.Mark(errs.Wrap(err, "refresh venue"), errs.ErrSubmission)
	}

	draft, err := BuildDraft(fresh, fields, w.today())
	if err != nil {
		return fresh, Draft{}, Confirmation{}, err
	}

	conf, err := w.submitter.Submit(ctx, draft)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = errs.Mark(err, ErrSubmitTimeout)
		}
		return fresh, draft, Confirmation{}, errs.Mark(errs.Wrap(err, "submit booking"), errs.ErrSubmission)
	}
	return fresh, draft, conf, nil
}

// Close tears the wizard down. A submission still in flight is not
// cancelled but its result is discarded.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.fields = Fields{}
}
