package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"preekrooster/core/calendar"
	"preekrooster/core/config"
	"preekrooster/core/database"
	"preekrooster/core/loader"
	"preekrooster/core/logger"
	"preekrooster/core/middleware/auth"
	"preekrooster/core/middleware/rayid"
	"preekrooster/core/scheduler"

	"preekrooster/feature/rooster"
	"preekrooster/feature/rooster/liturgy"
	"preekrooster/feature/rooster/models"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the sync daemon",
	Long: `Starts the scheduler, runs an immediate sync pass and keeps the
calendar in sync on the configured schedules. Optionally serves the
operational status endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := cfg.Validate(); err != nil {
			logg.Fatal("Invalid configuration", zap.Error(err))
		}

		// 3. Connect to the schedule database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to schedule database", zap.Error(err))
		}
		logg.Info("Connected to schedule database")

		// 4. Calendar provider
		loc, err := time.LoadLocation(cfg.Calendar.Timezone)
		if err != nil {
			logg.Fatal("Invalid timezone", zap.String("timezone", cfg.Calendar.Timezone), zap.Error(err))
		}

		ctx := context.Background()
		provider, err := calendar.NewProvider(ctx, cfg.Calendar)
		if err != nil {
			logg.Fatal("Failed to create calendar provider", zap.Error(err))
		}
		logg = logg.With(zap.String("provider", provider.Name()))

		// 5. Sync service
		rows := models.NewRowSource(db, cfg.Database.Query)
		probe := liturgy.New(cfg.Liturgy, logg)
		service := rooster.NewService(rows, provider, probe, loc, logg)

		// 6. Scheduler
		sched, err := scheduler.New(cfg.Schedule, logg, func() {
			runCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
			defer cancel()
			service.Run(runCtx)
		})
		if err != nil {
			logg.Fatal("Failed to create scheduler", zap.Error(err))
		}

		// 7. Status server (optional)
		var app *fiber.App
		if cfg.Server.Enabled {
			app = fiber.New(fiber.Config{
				DisableStartupMessage: true, // We will log our own startup message
			})

			mgr := loader.NewManager()
			mgr.Register(rooster.NewFeature(service))

			// Middleware Registration
			// 1. RayID (Must be first to trace everything)
			app.Use(rayid.New())

			// 2. Logging Middleware (Custom to use Zap + RayID)
			app.Use(func(c *fiber.Ctx) error {
				l := logger.WithRayID(logg, c)
				l.Info("Request started",
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
					zap.String("ip", c.IP()),
				)
				err := c.Next()
				if err != nil {
					l.Error("Request error", zap.Error(err))
				}
				return err
			})

			// 3. Auth (health stays public)
			app.Use(auth.New(auth.Config{
				ApiKey: cfg.Server.ApiKey,
				Skip:   []string{"/health"},
			}))

			app.Get("/health", func(c *fiber.Ctx) error {
				return c.JSON(fiber.Map{"status": "ok"})
			})

			if err := mgr.LoadAll(app); err != nil {
				logg.Fatal("Failed to load features", zap.Error(err))
			}

			go func() {
				logg.Info("Starting status server", zap.String("port", cfg.Server.Port))
				if err := app.Listen(":" + cfg.Server.Port); err != nil {
					logg.Fatal("Status server failed to start", zap.Error(err))
				}
			}()
		}

		sched.Start()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down...")
		sched.Stop()
		if app != nil {
			_ = app.Shutdown()
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
