package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/edpay/internal/cli"
	"github.com/alexanderramin/edpay/internal/config"
	"github.com/alexanderramin/edpay/internal/db"
	"github.com/alexanderramin/edpay/internal/logging"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/alexanderramin/edpay/internal/repository"
	"github.com/alexanderramin/edpay/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database opened", zap.String("path", cfg.DBPath))

	// Wire repositories
	mentorRepo := repository.NewSQLiteMentorRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	receiptRepo := repository.NewSQLiteReceiptRepo(database)
	authRepo := repository.NewSQLiteAuthStateRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewZapUseCaseObserver(logger))
	}

	clock := payout.SystemClock{}
	ids := payout.UUIDGenerator{}
	rates := cfg.PayoutConfig()

	mentors := service.NewMentorService(mentorRepo, uow, clock, observers...)
	if err := mentors.EnsureDefaults(context.Background()); err != nil {
		return fmt.Errorf("seeding mentors: %w", err)
	}

	app := &cli.App{
		Mentors:   mentors,
		Sessions:  service.NewSessionService(sessionRepo, mentorRepo, uow, clock, ids, observers...),
		Receipts:  service.NewReceiptService(receiptRepo, sessionRepo, mentorRepo, uow, payout.NewReceiptBuilder(clock, ids), rates, observers...),
		Dashboard: service.NewDashboardService(sessionRepo, receiptRepo, mentorRepo, clock, rates),
		Auth:      service.NewAuthService(authRepo, clock, observers...),

		Rates:          rates,
		ChatReplyDelay: cfg.ChatReplyDelay,
		Clock:          clock,
		Logger:         logger,
	}

	// Prompts and the chat panel need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
