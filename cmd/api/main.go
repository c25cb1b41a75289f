package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"event-scheduling-service/internal/config"
	"event-scheduling-service/internal/logger"

	eventsHttp "event-scheduling-service/internal/events/adapters/http/fiber"
	eventsICS "event-scheduling-service/internal/events/adapters/ics"
	eventsRepoPg "event-scheduling-service/internal/events/adapters/postgres"
	eventsRepoSQLite "event-scheduling-service/internal/events/adapters/sqlite"
	eventsPorts "event-scheduling-service/internal/events/core/ports"
	eventsUsecase "event-scheduling-service/internal/events/core/usecase"

	occupancyHttp "event-scheduling-service/internal/occupancy/adapters/http/fiber"
	occupancyRepoPg "event-scheduling-service/internal/occupancy/adapters/postgres"
	occupancyRepoSQLite "event-scheduling-service/internal/occupancy/adapters/sqlite"
	occupancyPorts "event-scheduling-service/internal/occupancy/core/ports"
	occupancyUsecase "event-scheduling-service/internal/occupancy/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	_ "modernc.org/sqlite"

	_ "event-scheduling-service/docs"
)

// @title Event Scheduling Service API
// @version 1.0
// @description Event CRUD with overlap, allowed-hours and past-time validation.
// @BasePath /
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	flag.Parse()

	// Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	hours, err := cfg.AllowedHours()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid allowed hours")
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timezone")
	}

	// DB connection
	db, err := openDB(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to open database")
	}
	defer db.Close()

	// Repositories
	eventRepository, occupancyRepository, err := newRepositories(context.Background(), cfg.DB.Driver, db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	// Usecases
	clock := eventsUsecase.SystemClock{}
	scheduleValidator := eventsUsecase.NewScheduleValidator(eventRepository, clock, eventsUsecase.ScheduleConfig{
		Hours:    hours,
		Location: loc,
		FailOpen: cfg.Schedule.OverlapFailOpen,
	}, log)
	eventUC := eventsUsecase.NewEventUseCase(eventRepository, scheduleValidator, log)
	getOccupancyUC := occupancyUsecase.NewGetOccupancyUseCase(occupancyRepository, hours)

	calendar := eventsICS.NewEncoder("-//event-scheduling-service//events//EN", "event-scheduling-service", loc, clock)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.FiberMiddleware(log))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSOrigins}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(eventUC, calendar)
	events := app.Group("/v1/api/events")
	events.Get("/", eventsHandler.ListEvents)
	events.Get("/calendar.ics", eventsHandler.ExportCalendar)
	events.Post("/create/", eventsHandler.CreateEvent)
	events.Put("/update/", eventsHandler.UpdateEvent)
	events.Get("/:id/", eventsHandler.GetEvent)
	events.Delete("/:id/delete/", eventsHandler.DeleteEvent)

	// occupancy endpoints
	occupancyHandler := occupancyHttp.NewOccupancyHandler(getOccupancyUC)
	app.Get("/v1/api/occupancy/", occupancyHandler.GetOccupancy)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTP.Addr); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().
		Str("addr", cfg.HTTP.Addr).
		Str("driver", cfg.DB.Driver).
		Str("allowed_hours", hours.String()).
		Str("timezone", loc.String()).
		Bool("overlap_fail_open", cfg.Schedule.OverlapFailOpen).
		Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}

func openDB(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func newRepositories(ctx context.Context, driver string, db *sql.DB) (eventsPorts.EventRepositoryPort, occupancyPorts.OccupancyReaderPort, error) {
	switch driver {
	case config.DriverSQLite:
		// Adapter-level DB wrappers
		eventsDB := eventsRepoSQLite.NewSQLDB(db)
		if err := eventsRepoSQLite.Migrate(ctx, eventsDB); err != nil {
			return nil, nil, err
		}
		return eventsRepoSQLite.NewEventRepository(eventsDB), occupancyRepoSQLite.NewOccupancyRepository(db), nil
	default:
		eventsDB := eventsRepoPg.NewSQLDB(db)
		if err := eventsRepoPg.Migrate(ctx, eventsDB); err != nil {
			return nil, nil, err
		}
		return eventsRepoPg.NewEventRepository(eventsDB), occupancyRepoPg.NewOccupancyRepository(occupancyRepoPg.NewSQLDB(db)), nil
	}
}
