package payments

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/marketplace-ledger/pkg/models"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the payer.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// DynamoDBPayer credits external accounts stored in a DynamoDB table.
type DynamoDBPayer struct {
	Client            DynamoDBAPI
	AccountsTableName string
}

// NewDynamoDBPayer creates a new DynamoDBPayer.
func NewDynamoDBPayer(client DynamoDBAPI, accountsTable string) *DynamoDBPayer {
	return &DynamoDBPayer{
		Client:            client,
		AccountsTableName: accountsTable,
	}
}

// Make sure we conform to the interface
var _ PayerReader = (*DynamoDBPayer)(nil)

// Pay atomically adds amount to the recipient's balance, creating the account item if it does not exist.
func (p *DynamoDBPayer) Pay(ctx context.Context, to models.Identity, amount uint64) error {
	if to.IsZero() {
		return fmt.Errorf("cannot pay the zero identity")
	}

	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for payment: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(p.AccountsTableName),
		Key: map[string]types.AttributeValue{
			"identity": &types.AttributeValueMemberS{Value: string(to)},
		},
		UpdateExpression: aws.String("SET balance = if_not_exists(balance, :zero) + :amount, version = if_not_exists(version, :zero) + :inc, updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: strconv.FormatUint(amount, 10)},
			":zero":   &types.AttributeValueMemberN{Value: "0"},
			":inc":    &types.AttributeValueMemberN{Value: "1"},
			":now":    nowAV,
		},
	}

	if _, err := p.Client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("failed to credit account %s in DynamoDB: %w", to, err)
	}

	return nil
}

// GetAccount retrieves an external account. Unknown identities have a zero balance.
func (p *DynamoDBPayer) GetAccount(ctx context.Context, id models.Identity) (*models.Account, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"identity": string(id)})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account identity: %w", err)
	}

	result, err := p.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(p.AccountsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get account from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return &models.Account{Identity: id}, nil
	}

	var acct models.Account
	if err := attributevalue.UnmarshalMap(result.Item, &acct); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &acct, nil
}
