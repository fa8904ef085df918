package leads

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/plinyoo/starfield/pkg/cache"
	"github.com/plinyoo/starfield/pkg/errors"
	"github.com/plinyoo/starfield/pkg/observability"
)

// Service validates and stores submissions.
type Service struct {
	Store  Store
	Logger *log.Logger

	// DemoMode accepts and logs submissions without storing them.
	DemoMode bool

	// Backoff schedules retries of transient store failures.
	Backoff cache.Backoff

	now   func() time.Time
	newID func() uuid.UUID
}

// NewService returns a service backed by store. A nil logger discards output.
func NewService(store Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Service{
		Store:   store,
		Logger:  logger,
		Backoff: cache.DefaultBackoff,
		now:     time.Now,
		newID:   uuid.New,
	}
}

// Submit normalizes, validates and stores s. Transient store failures are
// retried; a conflict on a retried insert means an earlier attempt landed.
func (s *Service) Submit(ctx context.Context, sub Submission) (lead *Lead, err error) {
	start := s.now()
	defer func() {
		observability.Lead().OnLeadSubmitted(ctx, string(sub.FormType), time.Since(start), err)
	}()

	sub.Normalize()
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	lead = &Lead{ID: s.newID(), Submission: sub, CreatedAt: s.now().UTC()}
	logger := s.Logger.With("id", lead.ID, "form", lead.FormType)

	if s.DemoMode || s.Store == nil {
		logger.Info("lead received (demo mode, not stored)", "email", lead.Email)
		return lead, nil
	}

	attempts := 0
	err = s.Backoff.Retry(ctx, func() error {
		attempts++
		err := s.Store.Save(ctx, lead)
		if attempts > 1 && errors.Is(err, errors.ErrCodeConflict) {
			return nil
		}
		if err != nil && cache.IsRetryable(err) {
			logger.Warn("save lead failed, retrying", "attempt", attempts, "error", err)
		}
		return err
	})
	if err != nil {
		logger.Error("save lead", "error", err)
		return nil, err
	}
	logger.Info("lead stored")
	return lead, nil
}

// List returns stored leads newest first.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Lead, error) {
	if opts.FormType != "" && !opts.FormType.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown form type %q", opts.FormType)
	}
	if s.Store == nil {
		return nil, nil
	}
	return s.Store.List(ctx, opts)
}

// Close releases the store.
func (s *Service) Close() error {
	if s.Store == nil {
		return nil
	}
	return s.Store.Close()
}
