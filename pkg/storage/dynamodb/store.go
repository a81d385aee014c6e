package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/marketplace-ledger/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the archive.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store archives committed journal entries in a DynamoDB ledger table. The
// in-memory ledger stays authoritative; the archive is a downstream copy.
type Store struct {
	Client          DynamoDBAPI
	LedgerTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, ledgerTable string) *Store {
	return &Store{
		Client:          client,
		LedgerTableName: ledgerTable,
	}
}

// Make sure we conform to the interface
var _ storage.JournalArchive = (*Store)(nil)
