// Package archiver copies journal entries from the event queue into the
// durable ledger archive.
package archiver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/chris/marketplace-ledger/pkg/events"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/storage"
)

// envelope is an events.Message with its payload left undecoded.
type envelope struct {
	Type    events.MessageType `json:"type"`
	Payload json.RawMessage    `json:"payload"`
}

// Archiver writes ledgerEntry messages to an ArchiveWriter. Other message
// types are acknowledged and skipped.
type Archiver struct {
	Store  storage.ArchiveWriter
	Logger *slog.Logger
}

// New creates a new Archiver.
func New(store storage.ArchiveWriter, logger *slog.Logger) *Archiver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Archiver{Store: store, Logger: logger}
}

// HandleMessage archives a single queue message body.
func (a *Archiver) HandleMessage(ctx context.Context, body string) error {
	var env envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	if env.Type != events.MessageTypeLedgerEntry {
		a.Logger.Debug("skipping message", slog.String("type", string(env.Type)))
		return nil
	}

	var entry models.LedgerEntry
	if err := json.Unmarshal(env.Payload, &entry); err != nil {
		return fmt.Errorf("failed to unmarshal ledger entry: %w", err)
	}
	if err := a.Store.PutLedgerEntry(ctx, &entry); err != nil {
		return fmt.Errorf("failed to archive entry %s: %w", entry.EntryID, err)
	}

	a.Logger.Info("ledger entry archived", slog.String("entry_id", entry.EntryID), slog.String("kind", string(entry.Kind)))
	return nil
}

// HandleSQSEvent archives a batch and reports the failed records so only
// they are redelivered.
func (a *Archiver) HandleSQSEvent(ctx context.Context, sqsEvent lambdaevents.SQSEvent) (lambdaevents.SQSEventResponse, error) {
	var resp lambdaevents.SQSEventResponse
	for _, message := range sqsEvent.Records {
		if err := a.HandleMessage(ctx, message.Body); err != nil {
			a.Logger.Error("failed to process message", slog.String("message_id", message.MessageId), slog.Any("error", err))
			resp.BatchItemFailures = append(resp.BatchItemFailures, lambdaevents.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
		}
	}
	return resp, nil
}
