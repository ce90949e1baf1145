package app

import (
	"os"
	"os/signal"
	"syscall"

	"job-management-api/internal/controller"
	"job-management-api/internal/repo"
	"job-management-api/internal/service"
	"job-management-api/pkg/http_server"
	"job-management-api/pkg/logging"
	"job-management-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
)

func runMigrations(postgresDB *postgres.Postgres, databaseName string, log *logging.Logger) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		log.Fatal("migration driver setup failed", "err", err)
	}

	migrations, err := migrate.NewWithDatabaseInstance("file://migrations", databaseName, driver)
	if err != nil {
		log.Fatal("migration setup failed", "err", err)
	}

	if err := migrations.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.Info("no change made by migration scripts")
		} else {
			log.Fatal("migration failed", "err", err)
		}
	}
}

func Run() {
	serverAddressEnv := os.Getenv("SERVER_ADDRESS")
	dbConnEnv := os.Getenv("POSTGRES_CONN")
	databaseEnv := os.Getenv("POSTGRES_DATABASE")

	log := logging.New(os.Getenv("LOG_LEVEL"))
	defer log.Sync()

	log.Info("connecting database")
	postgresDB, err := postgres.NewDB(dbConnEnv)
	if err != nil {
		log.Fatal("error occurred while connecting to db", "err", err)
	}
	defer postgresDB.Close()

	log.Info("running migrations")
	runMigrations(postgresDB, databaseEnv, log)

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(repositories, log)
	handler := echo.New()

	log.Info("setup routes")
	controller.SetupRoutesHandlers(handler, services)

	log.Info("starting server", "address", serverAddressEnv)
	httpServer := http_server.New(handler, serverAddressEnv)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("got signal", "signal", s.String())
	case err = <-httpServer.Notify():
		log.Error("server stopped", "err", err)
	}

	log.Info("shutting down")
	if err = httpServer.Shutdown(); err != nil {
		log.Error("shutdown error", "err", err)
	} else {
		log.Info("successful shutdown")
	}
}
