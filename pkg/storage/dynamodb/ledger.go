package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/google/uuid"
)

const (
	ledgerGSI          = "gsi1pk-timestamp-index"
	ledgerPartitionKey = "LEDGER_ENTRIES"
	storefrontGSI      = "storefront_id-timestamp-index"
)

// entryItem is the table layout of a journal entry. Every item shares gsi1pk
// so the global index lists the whole journal by time.
type entryItem struct {
	EntryID      string    `dynamodbav:"entry_id"`
	GSI1PK       string    `dynamodbav:"gsi1pk"`
	StorefrontID string    `dynamodbav:"storefront_id"`
	AccountID    string    `dynamodbav:"account_id"`
	Kind         string    `dynamodbav:"kind"`
	Debit        uint64    `dynamodbav:"debit"`
	Credit       uint64    `dynamodbav:"credit"`
	Description  string    `dynamodbav:"description"`
	Timestamp    time.Time `dynamodbav:"timestamp"`
}

func toItem(entry *models.LedgerEntry) entryItem {
	return entryItem{
		EntryID:      entry.EntryID,
		GSI1PK:       ledgerPartitionKey,
		StorefrontID: entry.StorefrontID.String(),
		AccountID:    string(entry.AccountID),
		Kind:         string(entry.Kind),
		Debit:        entry.Debit,
		Credit:       entry.Credit,
		Description:  entry.Description,
		Timestamp:    entry.Timestamp,
	}
}

func (i entryItem) toEntry() (models.LedgerEntry, error) {
	sfID, err := uuid.Parse(i.StorefrontID)
	if err != nil {
		return models.LedgerEntry{}, fmt.Errorf("invalid storefront id on entry %s: %w", i.EntryID, err)
	}
	return models.LedgerEntry{
		EntryID:      i.EntryID,
		StorefrontID: sfID,
		AccountID:    models.Identity(i.AccountID),
		Kind:         models.EntryKind(i.Kind),
		Debit:        i.Debit,
		Credit:       i.Credit,
		Description:  i.Description,
		Timestamp:    i.Timestamp,
	}, nil
}

// PutLedgerEntry writes a journal entry once. Redelivered entries are ignored.
func (s *Store) PutLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error {
	if entry.EntryID == "" {
		return fmt.Errorf("ledger entry has no id")
	}

	av, err := attributevalue.MarshalMap(toItem(entry))
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.LedgerTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil
		}
		return fmt.Errorf("failed to put ledger entry: %w", err)
	}
	return nil
}

// ListLedgerEntries returns the most recent archived entries, newest first.
func (s *Store) ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.LedgerTableName),
		IndexName:              aws.String(ledgerGSI),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: ledgerPartitionKey},
		},
		ScanIndexForward: aws.Bool(false), // Sort by timestamp in descending order
		Limit:            &limit,
	}
	return s.query(ctx, input)
}

// ListStorefrontEntries returns the archived entries of one storefront, newest first.
func (s *Store) ListStorefrontEntries(ctx context.Context, storefrontID uuid.UUID, limit int32) ([]models.LedgerEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.LedgerTableName),
		IndexName:              aws.String(storefrontGSI),
		KeyConditionExpression: aws.String("storefront_id = :sf"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sf": &types.AttributeValueMemberS{Value: storefrontID.String()},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            &limit,
	}
	return s.query(ctx, input)
}

func (s *Store) query(ctx context.Context, input *dynamodb.QueryInput) ([]models.LedgerEntry, error) {
	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for ledger entries: %w", err)
	}

	var items []entryItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entries: %w", err)
	}

	entries := make([]models.LedgerEntry, 0, len(items))
	for _, item := range items {
		entry, err := item.toEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
