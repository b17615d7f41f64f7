package interfaces

import (
	"context"

	"webquote/internal/domain/entities"
)

// ISessionRepository stores selection sessions for the lifetime of a visit.
//
// Get returns a zero Session (empty ID) when the id is unknown or evicted.
type ISessionRepository interface {
	Save(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, id string) (entities.Session, error)
	Delete(ctx context.Context, id string) (bool, error)
	Len() int
}
