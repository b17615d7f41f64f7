package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
)

func TestFromSession_EmptySelectionHasNoNulls(t *testing.T) {
	s := entities.Session{ID: "s-1", State: entities.SelectionState{IncludeHosting: true}}

	b, err := json.Marshal(FromSession(s))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "null") {
		t.Fatalf("expected no null fields, got %s", b)
	}
}

func TestFromDerivation(t *testing.T) {
	d := entities.Derivation{
		Breakdown: entities.PriceBreakdown{Total: 37.5, Items: []entities.LineItem{{Name: entities.ItemBaseTechnology, Value: 15}}},
		Duration:  12,
		Timeline:  entities.Timeline{Days: 12, Weeks: 2, Design: 3, Development: 6, Testing: 3},
	}

	got := FromDerivation(d)
	if got.Total != 37.5 || got.Duration != 12 || len(got.Items) != 1 || got.Items[0].Value != 15 {
		t.Fatalf("unexpected derivation: %+v", got)
	}
	if got.Timeline.DevelopmentDays != 6 || got.Timeline.Weeks != 2 {
		t.Fatalf("unexpected timeline: %+v", got.Timeline)
	}
}

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{ID: "q-1", Number: "INV-0001-2026", Stack: entities.StackCustomCode, Total: 65, Status: entities.QuoteStatusPending, CreatedAt: now}

	got := FromQuote(q)
	if got.QuoteID != "q-1" || got.Status != "pending" || got.Stack != "custom_code" || got.Items == nil {
		t.Fatalf("unexpected quote response: %+v", got)
	}
}

func TestFromDepositPayment(t *testing.T) {
	p := entities.DepositPayment{ID: "p-1", QuoteID: "q-1", Amount: 37.5, Status: entities.PaymentStatusApproved, MPPayloadRaw: []byte(`{"id":1}`)}

	got := FromDepositPayment(p)
	if got.PaymentID != "p-1" || got.QuoteID != "q-1" || got.Amount != 37.5 || got.MPPayloadRaw != `{"id":1}` {
		t.Fatalf("unexpected payment response: %+v", got)
	}
}

func TestFromCatalog_Ordered(t *testing.T) {
	got := FromCatalog(catalog.Default())

	if len(got.Categories) != len(entities.Categories) || got.Categories[0].ID != "news" {
		t.Fatalf("unexpected categories: %+v", got.Categories)
	}
	if len(got.Stacks) != 2 || got.Stacks[0].ID != "template_cms" {
		t.Fatalf("unexpected stacks: %+v", got.Stacks)
	}
	if len(got.Extras) != 4 || got.Extras[3].Key != "storage" {
		t.Fatalf("unexpected extras: %+v", got.Extras)
	}
	if got.Categories[2].Label == "" || len(got.Categories[2].Plugins) == 0 {
		t.Fatalf("expected blog profile and plugins, got %+v", got.Categories[2])
	}
}
