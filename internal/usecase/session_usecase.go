package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"webquote/internal/domain/entities"
	"webquote/internal/domain/quote"
	"webquote/internal/infrastructure/metrics"
	"webquote/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrInvalidSessionID      = errors.New("invalid session id")
	ErrUnknownCategory       = errors.New("unknown category")
	ErrUnknownStack          = errors.New("unknown stack")
	ErrUnknownExtra          = errors.New("unknown extra")
	ErrUnknownPlugin         = errors.New("unknown plugin")
	ErrUnknownAutomation     = errors.New("unknown automation")
	ErrUnknownContentService = errors.New("unknown content service")
	ErrUnknownSupportPackage = errors.New("unknown support package")
	ErrPluginsUnavailable    = errors.New("plugins are only available on the template cms stack with a category")
)

// ISessionUseCase drives a visitor's selection. Every intent is validated
// against the catalog, applied through the mutators and consistency rules,
// and stored together with the derivation of the resulting state.
type ISessionUseCase interface {
	Create(ctx context.Context) (entities.Session, error)
	Get(ctx context.Context, id string) (entities.Session, error)
	Delete(ctx context.Context, id string) error
	SetCategory(ctx context.Context, id string, c entities.Category) (entities.Session, error)
	SetStack(ctx context.Context, id string, s entities.Stack) (entities.Session, error)
	SetIncludeHosting(ctx context.Context, id string, include bool) (entities.Session, error)
	ToggleExtra(ctx context.Context, id string, k entities.ExtraKey) (entities.Session, error)
	TogglePlugin(ctx context.Context, id, pluginID string) (entities.Session, error)
	ToggleAutomation(ctx context.Context, id, optionID string) (entities.Session, error)
	ToggleContentService(ctx context.Context, id, optionID string) (entities.Session, error)
	SelectSupportPackage(ctx context.Context, id, packageID string) (entities.Session, error)
	Preview(ctx context.Context, c quote.Choices) (entities.SelectionState, entities.Derivation, error)
}

type SessionUseCase struct {
	repo    interfaces.ISessionRepository
	catalog entities.Catalog
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time

	// mu serialises read-modify-write of sessions.
	mu sync.Mutex
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(repo interfaces.ISessionRepository, catalog entities.Catalog, m *metrics.Metrics, logger *zap.Logger) *SessionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionUseCase{
		repo:    repo,
		catalog: catalog,
		metrics: m,
		logger:  logger.Named("session.usecase"),
		now:     time.Now,
	}
}

func (u *SessionUseCase) Create(ctx context.Context) (entities.Session, error) {
	now := u.now().UTC()
	state := entities.NewSelectionState()
	s := entities.Session{
		ID:         uuid.NewString(),
		State:      state,
		Derivation: quote.Derive(state, u.catalog),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.Session{}, err
	}
	u.metrics.SetActiveSessions(u.repo.Len())
	u.logger.Debug("session created", zap.String("session_id", s.ID))
	return s, nil
}

func (u *SessionUseCase) Get(ctx context.Context, id string) (entities.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrInvalidSessionID
	}

	s, err := u.repo.Get(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *SessionUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSessionID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrSessionNotFound
	}
	u.metrics.SetActiveSessions(u.repo.Len())
	return nil
}

func (u *SessionUseCase) SetCategory(ctx context.Context, id string, c entities.Category) (entities.Session, error) {
	return u.apply(ctx, id, "set_category", func(entities.SelectionState) error {
		if _, ok := u.catalog.Category(c); !ok || !c.Valid() {
			return ErrUnknownCategory
		}
		return nil
	}, func(s entities.SelectionState) entities.SelectionState {
		return quote.SetCategory(s, c)
	})
}

func (u *SessionUseCase) SetStack(ctx context.Context, id string, st entities.Stack) (entities.Session, error) {
	return u.apply(ctx, id, "set_stack", func(entities.SelectionState) error {
		if _, ok := u.catalog.Stack(st); !ok || !st.Valid() {
			return ErrUnknownStack
		}
		return nil
	}, func(s entities.SelectionState) entities.SelectionState {
		return quote.SetStack(s, st)
	})
}

func (u *SessionUseCase) SetIncludeHosting(ctx context.Context, id string, include bool) (entities.Session, error) {
	return u.apply(ctx, id, "set_hosting", nil, func(s entities.SelectionState) entities.SelectionState {
		return quote.SetIncludeHosting(s, include)
	})
}

func (u *SessionUseCase) ToggleExtra(ctx context.Context, id string, k entities.ExtraKey) (entities.Session, error) {
	return u.apply(ctx, id, "toggle_extra", func(entities.SelectionState) error {
		if _, ok := u.catalog.Extra(k); !ok || !k.Valid() {
			return ErrUnknownExtra
		}
		return nil
	}, func(s entities.SelectionState) entities.SelectionState {
		return quote.ToggleExtra(s, k)
	})
}

// TogglePlugin resolves the mandatory flag from the catalog, so toggling a
// mandatory plugin succeeds and leaves the selection unchanged.
func (u *SessionUseCase) TogglePlugin(ctx context.Context, id, pluginID string) (entities.Session, error) {
	var mandatory bool
	return u.apply(ctx, id, "toggle_plugin", func(cur entities.SelectionState) error {
		if cur.Stack != entities.StackTemplateCMS || cur.Category == "" {
			return ErrPluginsUnavailable
		}
		p, ok := u.catalog.Plugin(cur.Category, pluginID)
		if !ok {
			return ErrUnknownPlugin
		}
		mandatory = p.Mandatory
		return nil
	}, func(s entities.SelectionState) entities.SelectionState {
		return quote.TogglePlugin(s, pluginID, mandatory)
	})
}

func (u *SessionUseCase) ToggleAutomation(ctx context.Context, id, optionID string) (entities.Session, error) {
	return u.apply(ctx, id, "toggle_automation", func(entities.SelectionState) error {
		if _, ok := u.catalog.Automation(optionID); !ok {
			return ErrUnknownAutomation
		}
		return nil
	}, func(s entities.SelectionState) entities.SelectionState {
		return quote.ToggleAutomation(s, optionID)
	})
}

func (u *SessionUseCase) ToggleContentService(ctx context.Context, id, optionID string) (entities.Session, error) {
	return u.apply(ctx, id, "toggle_content_service", func(entities.SelectionState) error {
		if _, ok := u.catalog.ContentService(optionID); !ok {
			return ErrUnknownContentService
		}
		return nil
	}, func(s entities.SelectionState) entities.SelectionState {
		return quote.ToggleContentService(s, optionID)
	})
}

func (u *SessionUseCase) SelectSupportPackage(ctx context.Context, id, packageID string) (entities.Session, error) {
	return u.apply(ctx, id, "select_support", func(entities.SelectionState) error {
		if _, ok := u.catalog.SupportPackage(packageID); !ok {
			return ErrUnknownSupportPackage
		}
		return nil
	}, func(s entities.SelectionState) entities.SelectionState {
		return quote.SetSupportPackage(s, packageID)
	})
}

// Preview derives a quote from a full set of choices without touching any
// session.
func (u *SessionUseCase) Preview(_ context.Context, c quote.Choices) (entities.SelectionState, entities.Derivation, error) {
	if err := u.validateChoices(c); err != nil {
		u.metrics.RecordIntent("preview", err)
		return entities.SelectionState{}, entities.Derivation{}, err
	}

	state := quote.BuildSelection(c, u.catalog)
	d := quote.Derive(state, u.catalog)
	u.metrics.RecordIntent("preview", nil)
	u.metrics.RecordDerivation("preview", d.Breakdown.Total)
	return state, d, nil
}

func (u *SessionUseCase) validateChoices(c quote.Choices) error {
	if c.Category != "" {
		if _, ok := u.catalog.Category(c.Category); !ok || !c.Category.Valid() {
			return ErrUnknownCategory
		}
	}
	if c.Stack != "" {
		if _, ok := u.catalog.Stack(c.Stack); !ok || !c.Stack.Valid() {
			return ErrUnknownStack
		}
	}
	for _, k := range c.Extras {
		if _, ok := u.catalog.Extra(k); !ok || !k.Valid() {
			return ErrUnknownExtra
		}
	}
	if len(c.PluginIDs) > 0 && (c.Stack != entities.StackTemplateCMS || c.Category == "") {
		return ErrPluginsUnavailable
	}
	for _, id := range c.PluginIDs {
		if _, ok := u.catalog.Plugin(c.Category, id); !ok {
			return ErrUnknownPlugin
		}
	}
	for _, id := range c.AutomationIDs {
		if _, ok := u.catalog.Automation(id); !ok {
			return ErrUnknownAutomation
		}
	}
	for _, id := range c.ContentServiceIDs {
		if _, ok := u.catalog.ContentService(id); !ok {
			return ErrUnknownContentService
		}
	}
	if c.SupportPackageID != "" {
		if _, ok := u.catalog.SupportPackage(c.SupportPackageID); !ok {
			return ErrUnknownSupportPackage
		}
	}
	return nil
}

// apply loads the session, validates the intent against its current state,
// then stores the reconciled state and its derivation.
func (u *SessionUseCase) apply(ctx context.Context, id, intent string, validate func(entities.SelectionState) error, m quote.Mutator) (entities.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrInvalidSessionID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.repo.Get(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		u.metrics.RecordIntent(intent, ErrSessionNotFound)
		return entities.Session{}, ErrSessionNotFound
	}

	if validate != nil {
		if err := validate(s.State); err != nil {
			u.logger.Debug("intent rejected",
				zap.String("session_id", id),
				zap.String("intent", intent),
				zap.Error(err),
			)
			u.metrics.RecordIntent(intent, err)
			return entities.Session{}, err
		}
	}

	s.State, s.Derivation = quote.Apply(s.State, m, u.catalog)
	s.UpdatedAt = u.now().UTC()
	if err := u.repo.Save(ctx, s); err != nil {
		u.metrics.RecordIntent(intent, err)
		return entities.Session{}, err
	}

	u.metrics.RecordIntent(intent, nil)
	u.metrics.RecordDerivation("session", s.Derivation.Breakdown.Total)
	u.logger.Debug("intent applied",
		zap.String("session_id", id),
		zap.String("intent", intent),
		zap.Float64("total", s.Derivation.Breakdown.Total),
		zap.Int("duration", s.Derivation.Duration),
	)
	return s, nil
}
