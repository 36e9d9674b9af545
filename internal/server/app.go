// Package server wires the password service together and runs its gRPC and
// HTTP endpoints until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophpass/internal/logging"
	"github.com/dmitrijs2005/gophpass/internal/server/api"
	"github.com/dmitrijs2005/gophpass/internal/server/config"
	"github.com/dmitrijs2005/gophpass/internal/server/hasher"
	"github.com/dmitrijs2005/gophpass/internal/server/httpapi"
	"github.com/dmitrijs2005/gophpass/internal/server/notify"
	"github.com/dmitrijs2005/gophpass/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophpass/internal/server/services"
	"github.com/dmitrijs2005/gophpass/internal/server/validation"

	gs "github.com/dmitrijs2005/gophpass/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	controller  *api.Controller
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("repository manager init error: %w", err)
	}

	v, err := validation.New()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("validator init error: %w", err)
	}

	svc := services.NewPasswordService(db, rm, hasher.NewBcrypt(c.BcryptCost), newNotifier(c, logger), c)
	controller := api.NewController(svc, v, logger, c.ExposeInternalErrors)

	return &App{config: c, logger: logger, db: db, repomanager: rm, controller: controller}, nil
}

func newNotifier(c *config.Config, logger logging.Logger) notify.Notifier {
	if c.SMTPHost == "" {
		return notify.NewLogNotifier(logger)
	}
	return notify.NewSMTPNotifier(notify.SMTPConfig{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		Username: c.SMTPUsername,
		Password: c.SMTPPassword,
		From:     c.MailFrom,
		FromName: c.MailFromName,
	})
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.controller, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.controller, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run applies pending migrations and serves both endpoints. It returns once
// both have stopped, after a signal or a failure of either.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return nil
}
