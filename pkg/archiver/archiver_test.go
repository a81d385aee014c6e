package archiver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/chris/marketplace-ledger/pkg/events"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/storage/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func body(t *testing.T, msg events.Message) string {
	t.Helper()
	b, err := json.Marshal(msg)
	require.NoError(t, err)
	return string(b)
}

func TestHandleSQSEvent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	entry := models.LedgerEntry{
		EntryID:      uuid.New().String(),
		StorefrontID: uuid.New(),
		AccountID:    "buyer",
		Kind:         models.SALE,
		Credit:       10,
		Timestamp:    time.Now().UTC(),
	}

	t.Run("Success", func(t *testing.T) {
		store := mocks.NewArchiveWriter(t)
		store.On("PutLedgerEntry", mock.Anything, mock.MatchedBy(func(e *models.LedgerEntry) bool {
			return e.EntryID == entry.EntryID && e.StorefrontID == entry.StorefrontID && e.Credit == 10
		})).Return(nil).Once()

		a := New(store, logger)
		resp, err := a.HandleSQSEvent(context.Background(), lambdaevents.SQSEvent{Records: []lambdaevents.SQSMessage{
			{MessageId: "m-1", Body: body(t, events.Message{Type: events.MessageTypeLedgerEntry, Payload: entry})},
			{MessageId: "m-2", Body: body(t, events.Message{Type: events.MessageTypeBalanceUpdate, Payload: events.BalanceUpdatePayload{}})},
		}})

		require.NoError(t, err)
		assert.Empty(t, resp.BatchItemFailures)
	})

	t.Run("Partial Failure", func(t *testing.T) {
		store := mocks.NewArchiveWriter(t)
		store.On("PutLedgerEntry", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		a := New(store, logger)
		resp, err := a.HandleSQSEvent(context.Background(), lambdaevents.SQSEvent{Records: []lambdaevents.SQSMessage{
			{MessageId: "m-1", Body: body(t, events.Message{Type: events.MessageTypeLedgerEntry, Payload: entry})},
			{MessageId: "m-2", Body: "{not json"},
		}})

		require.NoError(t, err)
		require.Len(t, resp.BatchItemFailures, 2)
		assert.Equal(t, "m-1", resp.BatchItemFailures[0].ItemIdentifier)
		assert.Equal(t, "m-2", resp.BatchItemFailures[1].ItemIdentifier)
	})
}
