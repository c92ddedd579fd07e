// Package careconnect собирает HTTP-приложение CareConnect: хранилище, кэш
// отозванных сессий, брокер событий, сервисы и маршруты.
package careconnect

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/cyb3erasad/Donor-Management-System/internal/cache"
	"github.com/cyb3erasad/Donor-Management-System/internal/config"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/health"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/page"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/jwt"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/metrics"
	"github.com/cyb3erasad/Donor-Management-System/internal/migrations"
	"github.com/cyb3erasad/Donor-Management-System/internal/rabbitmq"
	adminservice "github.com/cyb3erasad/Donor-Management-System/internal/services/admin"
	aggregationservice "github.com/cyb3erasad/Donor-Management-System/internal/services/aggregation"
	authservice "github.com/cyb3erasad/Donor-Management-System/internal/services/auth"
	donationservice "github.com/cyb3erasad/Donor-Management-System/internal/services/donation"
	"github.com/cyb3erasad/Donor-Management-System/internal/storage/repository"
	"github.com/cyb3erasad/Donor-Management-System/internal/web"
)

const shutdownTimeout = 15 * time.Second

// Publisher публикует события о движении средств.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

type App struct {
	server  *http.Server
	logger  *slog.Logger
	db      *repository.Storage
	cache   *cache.Cache
	closers []io.Closer
}

// New поднимает зависимости, применяет миграции и создаёт администратора,
// если его ещё нет.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}

	publisher, err := app.newPublisher(cfg)
	if err != nil {
		app.close()
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(db, jwtMaker, cacheRedis)
	created, err := authService.EnsureAdmin(ctx, authservice.AdminAccount{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		FullName: cfg.AdminName,
		Phone:    cfg.AdminPhone,
	})
	if err != nil {
		app.close()
		return nil, err
	}
	if created {
		logger.Info("admin account created", slog.String("email", cfg.AdminEmail))
	}

	renderer, err := page.NewRenderer(web.TemplatesFS)
	if err != nil {
		app.close()
		return nil, err
	}

	m := metrics.New(reg)
	deps := Deps{
		Auth:        authService,
		Donation:    donationservice.New(logger, db, publisher, m),
		Admin:       adminservice.New(logger, db, LedgerTx(db), publisher, m),
		Aggregation: aggregationservice.New(Snapshot(db)),
		Renderer:    renderer,
		Metrics:     m,
		Checks: map[string]health.Pinger{
			"postgres": db,
			"redis":    cacheRedis,
		},
		SignInLimit:  rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		CookieSecure: cfg.CookieSecure,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, deps)

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

// newPublisher подключается к RabbitMQ. Без URL события отбрасываются.
func (a *App) newPublisher(cfg *config.Config) (Publisher, error) {
	if cfg.RabbitMQURL == "" {
		a.logger.Warn("rabbitmq url is empty, donation events are discarded")
		return rabbitmq.Discard{}, nil
	}
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	a.closers = append(a.closers, ch, conn)
	return rabbitmq.NewPublisher(ch, rabbitmq.ExchangeName), nil
}

// Snapshot читает дашборд администратора из одного согласованного снимка.
func Snapshot(db *repository.Storage) aggregationservice.Snapshot {
	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	return func(ctx context.Context, fn func(r aggregationservice.SnapshotReader) error) error {
		return db.InTx(ctx, opts, func(q *repository.Queries) error {
			return fn(q)
		})
	}
}

// LedgerTx проводит выплату в транзакции записи.
func LedgerTx(db *repository.Storage) adminservice.LedgerTx {
	return func(ctx context.Context, fn func(l adminservice.Ledger) error) error {
		return db.InTx(ctx, nil, func(q *repository.Queries) error {
			return fn(q)
		})
	}
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		if err != nil {
			return fmt.Errorf("careconnect.Run: %w", err)
		}
		return nil
	}
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Error("failed to close rabbitmq", sl.Err(err))
		}
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close redis", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
}
