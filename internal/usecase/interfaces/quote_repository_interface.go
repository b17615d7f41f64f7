package interfaces

import (
	"context"

	"webquote/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for issued quotes.
//
// UpdateStatus only applies when the stored status equals from; otherwise it
// returns a zero Quote and no error.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error)
}
