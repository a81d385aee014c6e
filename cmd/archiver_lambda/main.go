package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/marketplace-ledger/pkg/archiver"
	"github.com/chris/marketplace-ledger/pkg/config"
	"github.com/chris/marketplace-ledger/pkg/logging"
	dydbstore "github.com/chris/marketplace-ledger/pkg/storage/dynamodb"
)

var handler *archiver.Archiver

func init() {
	cfg, err := config.LoadArchiver()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, "json", cfg.LogLevel)
	slog.SetDefault(logger)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		logger.Error("unable to load SDK config", slog.Any("error", err))
		os.Exit(1)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.LedgerTableName)
	handler = archiver.New(store, logger)
}

func main() {
	lambda.Start(handler.HandleSQSEvent)
}
