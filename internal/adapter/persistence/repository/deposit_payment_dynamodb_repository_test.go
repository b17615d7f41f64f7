package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"webquote/internal/domain/entities"
)

func TestDepositPaymentDynamoRepository_CreateAndList(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewDepositPaymentDynamoRepository(fake, "payments-test")
	p := entities.DepositPayment{
		ID:           "123",
		QuoteID:      "q-1",
		Amount:       37.5,
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: json.RawMessage(`{"id":"123"}`),
		MPPayload:    map[string]interface{}{"id": "123"},
	}

	if _, err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	fake.queryOut = &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{fake.put.Item}}
	got, err := repo.ListByQuoteID(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if aws.ToString(fake.query.IndexName) != paymentsQuoteIDIndex {
		t.Fatalf("expected query on %s, got %q", paymentsQuoteIDIndex, aws.ToString(fake.query.IndexName))
	}
	if len(got) != 1 || got[0].Amount != 37.5 || got[0].Status != entities.PaymentStatusApproved || string(got[0].MPPayloadRaw) != `{"id":"123"}` {
		t.Fatalf("unexpected payments: %+v", got)
	}
}

func TestDepositPaymentDynamoRepository_GetByID(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewDepositPaymentDynamoRepository(fake, "")

	got, err := repo.GetByID(context.Background(), "missing")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero payment and nil error, got %+v, %v", got, err)
	}
	if aws.ToString(fake.get.TableName) != DefaultPaymentsTableName {
		t.Fatalf("expected default table, got %q", aws.ToString(fake.get.TableName))
	}
}
