package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errs.New("booking session not found")
	ErrSessionForbidden = errs.New("booking session belongs to another user")
	ErrInvalidPatch     = errs.New("invalid booking field value")
)

// SessionView is a consistent snapshot of one booking session.
type SessionView struct {
	ID    uuid.UUID
	State booking.State
}

type ConfirmResult struct {
	Session SessionView
	Receipt booking.Receipt
}

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

// BookingSessionCommands owns the live booking wizards. Each session is
// bound to the user who opened it.
type BookingSessionCommands interface {
	Open(ctx context.Context, s auth.Session, venueID venue.ID) (*SessionView, error)
	Get(ctx context.Context, s auth.Session, id uuid.UUID) (*SessionView, error)
	Update(ctx context.Context, s auth.Session, id uuid.UUID, req reqdto.UpdateBookingSessionRequest) (*SessionView, error)
	Advance(ctx context.Context, s auth.Session, id uuid.UUID) (*SessionView, error)
	Retreat(ctx context.Context, s auth.Session, id uuid.UUID) (*SessionView, error)
	Confirm(ctx context.Context, s auth.Session, id uuid.UUID) (*ConfirmResult, error)
	Close(ctx context.Context, s auth.Session, id uuid.UUID) error
	// Shutdown closes every open session.
	Shutdown()
}

type sessionEntry struct {
	wizard *booking.Wizard
	owner  uuid.UUID

	mu       sync.Mutex
	caller   auth.Session
	lastSeen time.Time
}

func (e *sessionEntry) touch(s auth.Session, now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.caller = s
	e.lastSeen = now
}

func (e *sessionEntry) current() auth.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.caller
}

func (e *sessionEntry) idleSince() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastSeen
}

type bookingSessionCommandsImpl struct {
	catalog shared.VenueCatalog
	gateway shared.BookingGateway
	clock   clock.Clock
	cfg     config.BookingConfig
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

func NewBookingSessionCommands(
	catalog shared.VenueCatalog,
	gateway shared.BookingGateway,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) BookingSessionCommands {
	return &bookingSessionCommandsImpl{
		catalog:  catalog,
		gateway:  gateway,
		clock:    clk,
		cfg:      cfg.Booking,
		logger:   logger,
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
}

// catalogLookup adapts the catalog to the wizard's venue port with classified errors.
type catalogLookup struct {
	catalog shared.VenueCatalog
}

func (l catalogLookup) GetVenue(ctx context.Context, id venue.ID) (*venue.Venue, error) {
	v, err := l.catalog.GetVenue(ctx, id)
	if err != nil {
		return nil, shared.ClassifyRepoErr(err, "get venue")
	}
	return v, nil
}

func (c *bookingSessionCommandsImpl) Open(ctx context.Context, s auth.Session, venueID venue.ID) (*SessionView, error) {
	c.expireIdle()

	lookup := catalogLookup{catalog: c.catalog}
	v, err := lookup.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	entry := &sessionEntry{owner: s.UserID(), caller: s, lastSeen: c.clock.Now()}

	submitter := booking.SubmitterFunc(func(ctx context.Context, d booking.Draft) (booking.Confirmation, error) {
		return c.gateway.SubmitBooking(ctx, entry.current(), d)
	})
	w, err := booking.NewWizard(v, submitter,
		booking.Services{Clock: c.clock, Venues: lookup},
		booking.Policy{
			Location:            c.cfg.Location(),
			SubmitTimeout:       c.cfg.SubmitTimeout,
			SuccessDisplayDelay: c.cfg.SuccessDisplayDelay,
		},
		func(r booking.Receipt) { c.scheduleClose(id, r) },
	)
	if err != nil {
		return nil, err
	}
	entry.wizard = w

	c.mu.Lock()
	c.sessions[id] = entry
	c.mu.Unlock()

	c.logger.Info("booking session opened", "session_id", id, "venue_id", venueID, "user_id", s.UserID())
	return &SessionView{ID: id, State: w.State()}, nil
}

func (c *bookingSessionCommandsImpl) Get(_ context.Context, s auth.Session, id uuid.UUID) (*SessionView, error) {
	e, err := c.lookup(s, id)
	if err != nil {
		return nil, err
	}
	return &SessionView{ID: id, State: e.wizard.State()}, nil
}

func (c *bookingSessionCommandsImpl) Update(_ context.Context, s auth.Session, id uuid.UUID, req reqdto.UpdateBookingSessionRequest) (*SessionView, error) {
	e, err := c.lookup(s, id)
	if err != nil {
		return nil, err
	}
	p, err := req.ToDomain()
	if err != nil {
		return nil, errs.MarkAll(err, ErrInvalidPatch, errs.ErrValidation)
	}
	if err := e.wizard.Update(p); err != nil {
		return nil, err
	}
	return &SessionView{ID: id, State: e.wizard.State()}, nil
}

func (c *bookingSessionCommandsImpl) Advance(_ context.Context, s auth.Session, id uuid.UUID) (*SessionView, error) {
	e, err := c.lookup(s, id)
	if err != nil {
		return nil, err
	}
	if err := e.wizard.Advance(); err != nil {
		return nil, err
	}
	return &SessionView{ID: id, State: e.wizard.State()}, nil
}

func (c *bookingSessionCommandsImpl) Retreat(_ context.Context, s auth.Session, id uuid.UUID) (*SessionView, error) {
	e, err := c.lookup(s, id)
	if err != nil {
		return nil, err
	}
	if err := e.wizard.Retreat(); err != nil {
		return nil, err
	}
	return &SessionView{ID: id, State: e.wizard.State()}, nil
}

// Confirm submits the session's booking. The submission outlives a
// disconnecting client and is bounded by the configured timeout instead.
func (c *bookingSessionCommandsImpl) Confirm(ctx context.Context, s auth.Session, id uuid.UUID) (*ConfirmResult, error) {
	e, err := c.lookup(s, id)
	if err != nil {
		return nil, err
	}

	receipt, err := e.wizard.Confirm(context.WithoutCancel(ctx))
	if err != nil {
		if errs.Is(err, errs.ErrSubmission) {
			c.logger.Warn("booking submission failed", "session_id", id, "error", err.Error())
		}
		return nil, err
	}

	c.logger.Info("booking submitted", "session_id", id, "booking_id", receipt.BookingID)
	return &ConfirmResult{
		Session: SessionView{ID: id, State: e.wizard.State()},
		Receipt: receipt,
	}, nil
}

func (c *bookingSessionCommandsImpl) Close(_ context.Context, s auth.Session, id uuid.UUID) error {
	if _, err := c.lookup(s, id); err != nil {
		return err
	}
	c.remove(id)
	return nil
}

func (c *bookingSessionCommandsImpl) Shutdown() {
	c.mu.Lock()
	entries := c.sessions
	c.sessions = make(map[uuid.UUID]*sessionEntry)
	c.mu.Unlock()

	for _, e := range entries {
		e.wizard.Close()
	}
}

func (c *bookingSessionCommandsImpl) lookup(s auth.Session, id uuid.UUID) (*sessionEntry, error) {
	c.expireIdle()

	c.mu.Lock()
	e, ok := c.sessions[id]
	c.mu.Unlock()
	if !ok {
		return nil, errs.MarkAll(errs.Wrapf(ErrSessionNotFound, "session %s", id), errs.ErrNotFound)
	}
	if e.owner != s.UserID() {
		return nil, errs.Mark(ErrSessionForbidden, errs.ErrForbidden)
	}
	e.touch(s, c.clock.Now())
	return e, nil
}

// scheduleClose closes a succeeded session once its success message has been shown.
func (c *bookingSessionCommandsImpl) scheduleClose(id uuid.UUID, r booking.Receipt) {
	time.AfterFunc(r.DisplayFor, func() { c.remove(id) })
}

func (c *bookingSessionCommandsImpl) remove(id uuid.UUID) {
	c.mu.Lock()
	e, ok := c.sessions[id]
	delete(c.sessions, id)
	c.mu.Unlock()

	if ok {
		e.wizard.Close()
		c.logger.Debug("booking session closed", "session_id", id)
	}
}

func (c *bookingSessionCommandsImpl) expireIdle() {
	if c.cfg.SessionIdleTimeout <= 0 {
		return
	}
	cutoff := c.clock.Now().Add(-c.cfg.SessionIdleTimeout)

	c.mu.Lock()
	var expired []*sessionEntry
	for id, e := range c.sessions {
		if e.idleSince().Before(cutoff) && e.wizard.State().Outcome != booking.OutcomeSubmitting {
			expired = append(expired, e)
			delete(c.sessions, id)
		}
	}
	c.mu.Unlock()

	for _, e := range expired {
		e.wizard.Close()
	}
}
