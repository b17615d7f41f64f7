package usecase

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"webquote/internal/domain/entities"
	"webquote/internal/infrastructure/metrics"
	"webquote/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrQuoteNotReady       = errors.New("selection is not ready to be issued")
	ErrQuoteStatusConflict = errors.New("quote is no longer pending")
)

// IQuoteUseCase issues quotes from sessions and moves them through their
// lifecycle.
//
//   - POST /quotes => Issue()
//   - PATCH /quotes/:quote_id/{approve,reject,cancel} => Approve(), Reject(), Cancel()
type IQuoteUseCase interface {
	Issue(ctx context.Context, sessionID, customerName, customerContact string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Approve(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
	Cancel(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	sessions interfaces.ISessionRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, sessions interfaces.ISessionRepository, m *metrics.Metrics, logger *zap.Logger) *QuoteUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteUseCase{
		repo:     repo,
		sessions: sessions,
		metrics:  m,
		logger:   logger.Named("quote.usecase"),
		now:      time.Now,
	}
}

// Issue freezes the current derivation of a session into a pending quote. A
// quote needs a stack and a positive total.
func (u *QuoteUseCase) Issue(ctx context.Context, sessionID, customerName, customerContact string) (entities.Quote, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Quote{}, ErrInvalidSessionID
	}

	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.Quote{}, err
	}
	if s.ID == "" {
		return entities.Quote{}, ErrSessionNotFound
	}
	if s.State.Stack == "" || s.Derivation.Breakdown.Total <= 0 {
		return entities.Quote{}, ErrQuoteNotReady
	}

	id := uuid.New()
	now := u.now().UTC()
	q := entities.Quote{
		ID:              id.String(),
		Number:          invoiceNumber(id, now),
		SessionID:       s.ID,
		Category:        s.State.Category,
		Stack:           s.State.Stack,
		Items:           append([]entities.LineItem(nil), s.Derivation.Breakdown.Items...),
		Total:           s.Derivation.Breakdown.Total,
		Duration:        s.Derivation.Duration,
		CustomerName:    strings.TrimSpace(customerName),
		CustomerContact: strings.TrimSpace(customerContact),
		Status:          entities.QuoteStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.logger.Error("quote create failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.Quote{}, err
	}
	u.metrics.RecordQuoteIssued()
	u.logger.Info("quote issued",
		zap.String("quote_id", created.ID),
		zap.String("number", created.Number),
		zap.Float64("total", created.Total),
	)
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Approve(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) Cancel(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusCancelled)
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, to entities.QuoteStatus) (entities.Quote, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrQuoteStatusConflict
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, entities.QuoteStatusPending, to)
	if err != nil {
		return entities.Quote{}, err
	}
	// Lost a race with another transition.
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteStatusConflict
	}
	u.metrics.RecordQuoteTransition(string(to))
	u.logger.Info("quote status changed", zap.String("quote_id", updated.ID), zap.String("status", string(to)))
	return updated, nil
}

// invoiceNumber renders INV-<4 digits>-<year>, the digits taken from the
// quote id.
func invoiceNumber(id uuid.UUID, at time.Time) string {
	n := binary.BigEndian.Uint16(id[:2]) % 10000
	return fmt.Sprintf("INV-%04d-%d", n, at.Year())
}
