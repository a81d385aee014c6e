package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/marketplace-ledger/pkg/config"
	"github.com/chris/marketplace-ledger/pkg/events"
	"github.com/chris/marketplace-ledger/pkg/handlers"
	"github.com/chris/marketplace-ledger/pkg/handlers/ledger"
	"github.com/chris/marketplace-ledger/pkg/logging"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/payments"
	dydbstore "github.com/chris/marketplace-ledger/pkg/storage/dynamodb"
	"github.com/chris/marketplace-ledger/pkg/storage/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		payer     payments.PayerReader = payments.NewBook()
		publisher events.Publisher     = &events.NoOpPublisher{}
		archive   *ledger.ArchiveHandler
	)

	if cfg.NeedsAWS() {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return err
		}
		dbClient := dynamodb.NewFromConfig(awsCfg)

		if cfg.Payer == config.PayerDynamoDB {
			payer = payments.NewDynamoDBPayer(dbClient, cfg.AccountsTableName)
		}
		if cfg.EventsQueueURL != "" {
			publisher = events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.EventsQueueURL)
		}
		if cfg.LedgerTableName != "" {
			archive = ledger.NewArchiveHandler(dydbstore.New(dbClient, cfg.LedgerTableName))
		}
	}

	owner := models.Identity(cfg.MarketplaceOwner)
	registry, err := memory.NewRegistry(owner, logger)
	if err != nil {
		return err
	}
	store, err := memory.NewLedger(owner, registry, payer, publisher, logger)
	if err != nil {
		return err
	}

	handler := handlers.NewApiHandler(registry, store, payer)
	handler.Archive = archive

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler.Router(logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.String("port", cfg.HTTPPort),
			slog.String("owner", cfg.MarketplaceOwner),
			slog.String("payer", cfg.Payer),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
