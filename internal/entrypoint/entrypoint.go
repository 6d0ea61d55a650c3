package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mrlokans/flashcards/internal/audit"
	"github.com/mrlokans/flashcards/internal/config"
	"github.com/mrlokans/flashcards/internal/database"
	auditRepo "github.com/mrlokans/flashcards/internal/database/audit"
	"github.com/mrlokans/flashcards/internal/database/store"
	"github.com/mrlokans/flashcards/internal/demo"
	http_controllers "github.com/mrlokans/flashcards/internal/http"
	"github.com/mrlokans/flashcards/internal/logging"
	"github.com/mrlokans/flashcards/internal/scheduler"
	"github.com/mrlokans/flashcards/internal/services"
	"github.com/mrlokans/flashcards/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the wired services shared by every command.
type App struct {
	DB         *database.Database
	Audit      *audit.Service
	Users      *services.UserService
	Courses    *services.CourseService
	Levels     *services.LevelService
	Flashcards *services.FlashcardService
}

// NewApp opens the database and wires the services. Audit writes are
// asynchronous when async is set; call Close to drain them.
func NewApp(cfg *config.Config, async bool) (*App, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}

	app := &App{DB: db}

	var auditor services.Auditor
	if cfg.Audit.Enabled {
		app.Audit = audit.NewService(auditRepo.NewRepository(db.DB), async)
		auditor = app.Audit
	}

	uow := store.New(db.DB)
	app.Users = services.NewUserService(uow, auditor, cfg.Auth.BcryptCost)
	app.Courses = services.NewCourseService(uow, auditor)
	app.Levels = services.NewLevelService(uow, auditor)
	app.Flashcards = services.NewFlashcardService(uow, auditor)
	return app, nil
}

// RouterConfig builds the HTTP dependencies from the app.
func (a *App) RouterConfig(cfg *config.Config, version string) http_controllers.RouterConfig {
	routerCfg := http_controllers.RouterConfig{
		Users:          a.Users,
		Courses:        a.Courses,
		Levels:         a.Levels,
		Flashcards:     a.Flashcards,
		Database:       a.DB,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		ReadOnly:       cfg.Demo.ReadOnly,
		Version:        version,
	}
	if a.Audit != nil {
		routerCfg.AuditLog = a.Audit
	}
	return routerCfg
}

// Close flushes pending audit writes and closes the database.
func (a *App) Close() {
	if a.Audit != nil {
		a.Audit.Wait()
	}
	if err := a.DB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database")
	}
}

func Serve(handler http.Handler, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: handler,
	}

	go func() {
		logrus.Infof("Starting server at %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Infof("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server Shutdown")
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	logrus.Info("Server exiting")
}

func Run(cfg *config.Config, version string) {
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	logrus.Infof("Starting Flashcards v%s", version)

	app, err := NewApp(cfg, true)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer app.Close()

	if cfg.Demo.ReadOnly {
		logrus.Info("Demo mode enabled - write operations will be blocked")
	}

	bgCtx, cancelBackground := context.WithCancel(context.Background())
	defer cancelBackground()

	var taskClient *tasks.Client
	if cfg.Tasks.Enabled && cfg.Audit.Enabled {
		taskClient, err = startTasks(bgCtx, cfg, app.Audit)
		if err != nil {
			logrus.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				logrus.WithError(err).Error("Error closing task client")
			}
		}()
	}

	var cleanup *scheduler.AuditCleanupScheduler
	if cfg.Audit.Enabled {
		var runner scheduler.AuditCleanupRunner = scheduler.DirectCleanup{Cleaner: app.Audit}
		if taskClient != nil {
			runner = taskClient
		}
		cleanup = scheduler.NewAuditCleanupScheduler(runner, cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays)
		if err := cleanup.Start(bgCtx); err != nil {
			logrus.Fatalf("Failed to start audit cleanup scheduler: %v", err)
		}
	}

	handler := http_controllers.NewHandler(app.RouterConfig(cfg, version))

	onShutdown := func(ctx context.Context) {
		if cleanup != nil {
			cleanup.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
		}
		cancelBackground()
	}

	Serve(handler, cfg, onShutdown)
}

func startTasks(ctx context.Context, cfg *config.Config, cleaner tasks.AuditEventCleaner) (*tasks.Client, error) {
	dbPath := cfg.Tasks.DatabasePath
	if dbPath == "" {
		dbPath = tasks.DatabasePathFor(cfg.Database.Path)
	}

	taskCfg := tasks.DefaultConfig()
	if cfg.Tasks.Workers > 0 {
		taskCfg.Workers = cfg.Tasks.Workers
	}
	if cfg.Tasks.ReleaseAfter > 0 {
		taskCfg.ReleaseAfter = cfg.Tasks.ReleaseAfter
	}
	if cfg.Tasks.CleanupInterval > 0 {
		taskCfg.CleanupInterval = cfg.Tasks.CleanupInterval
	}

	client, err := tasks.NewClient(dbPath, taskCfg)
	if err != nil {
		return nil, err
	}
	client.Register(tasks.NewCleanupAuditEventsQueue(cleaner))
	go client.Start(ctx)
	return client, nil
}

// SeedDemo writes the demo catalogue into the configured database.
func SeedDemo(ctx context.Context, cfg *config.Config) (demo.SeedResult, error) {
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	app, err := NewApp(cfg, false)
	if err != nil {
		return demo.SeedResult{}, err
	}
	defer app.Close()

	seeder := &demo.Seeder{
		Users:      app.Users,
		Courses:    app.Courses,
		Levels:     app.Levels,
		Flashcards: app.Flashcards,
	}
	return seeder.Seed(ctx, cfg.Demo.Password)
}
