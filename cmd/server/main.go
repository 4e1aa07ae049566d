package main

import (
	"context"
	"database/sql"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/churnai/churnai/migrations"
	"github.com/churnai/churnai/modules/churn/domain/events"
	churnpersistence "github.com/churnai/churnai/modules/churn/infrastructure/persistence"
	churncontrollers "github.com/churnai/churnai/modules/churn/presentation/controllers"
	churnservices "github.com/churnai/churnai/modules/churn/services"
	corepersistence "github.com/churnai/churnai/modules/core/infrastructure/persistence"
	corecontrollers "github.com/churnai/churnai/modules/core/presentation/controllers"
	coreservices "github.com/churnai/churnai/modules/core/services"
	"github.com/churnai/churnai/pkg/configuration"
	"github.com/churnai/churnai/pkg/eventbus"
	"github.com/churnai/churnai/pkg/metrics"
	"github.com/churnai/churnai/pkg/middleware"
	"github.com/churnai/churnai/pkg/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	if conf.MigrationsEnabled {
		if err := runMigrations(conf.Database.ConnectionString()); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
		logger.Info("database migrations applied")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	bus := eventbus.NewEventPublisher(logger)
	bus.Subscribe(func(event events.ImportCompletedV1) {
		logger.WithFields(map[string]any{
			"topic":           events.TopicImportCompletedV1,
			"organization_id": event.OrganizationID,
			"csv_type":        event.CSVType,
			"inserted":        event.Inserted,
			"skipped":         event.Skipped,
			"batch_errors":    event.BatchErrors,
		}).Info("import run completed")
	})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	authService := coreservices.NewAuthService(corepersistence.NewAuthRepository())
	importService := churnservices.NewImportService(churnpersistence.NewChurnRepository(), bus, rng)

	controllers := []server.Controller{
		corecontrollers.NewHealthController(pool),
		churncontrollers.NewImportAPIController(authService, importService),
	}
	if conf.Prometheus.Enabled {
		controllers = append(controllers, metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	srv := server.NewHTTPServer(controllers, []mux.MiddlewareFunc{
		middleware.WithLogger(logger),
		middleware.WithPool(pool),
	})
	log.Printf("Listening on: %s\n", conf.SocketAddress)
	if err := srv.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func runMigrations(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "churn")
}
