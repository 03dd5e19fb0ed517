package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"projecthub/internal/adapters/rest"
	"projecthub/internal/adapters/scheduler"
	"projecthub/internal/application"
	"projecthub/internal/config"
	"projecthub/internal/infrastructure/database"
	"projecthub/internal/infrastructure/i18n"
	"projecthub/internal/infrastructure/memory"
	"projecthub/internal/infrastructure/security"
	"projecthub/internal/ports/output"
)

type repositories struct {
	accounts      output.AccountRepository
	entrepreneurs output.EntrepreneurRepository
	groups        output.StudentGroupRepository
	projects      output.ProjectRepository
	interests     output.ProjectInterestRepository
	events        output.EventRepository
}

func memoryRepositories() repositories {
	store := memory.NewStore()
	return repositories{
		accounts:      memory.NewAccountRepository(store),
		entrepreneurs: memory.NewEntrepreneurRepository(store),
		groups:        memory.NewStudentGroupRepository(store),
		projects:      memory.NewProjectRepository(store),
		interests:     memory.NewProjectInterestRepository(store),
		events:        memory.NewEventRepository(store),
	}
}

func postgresRepositories(db database.TxDB) repositories {
	return repositories{
		accounts:      database.NewAccountRepository(db),
		entrepreneurs: database.NewEntrepreneurRepository(db),
		groups:        database.NewStudentGroupRepository(db),
		projects:      database.NewProjectRepository(db),
		interests:     database.NewProjectInterestRepository(db),
		events:        database.NewEventRepository(db),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos := memoryRepositories()
	if cfg.UsesDatabase() {
		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
				log.Fatalf("❌ Failed to apply migrations: %v", err)
			}
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Failed to initialize the database: %v", err)
		}
		defer pool.Close()
		repos = postgresRepositories(pool)
	} else {
		log.Println("⚠️ DATABASE_URL not set, using the in-memory store. Data is lost on restart.")
	}

	resolver := application.NewResolver(repos.entrepreneurs, repos.groups, repos.projects, repos.interests)
	registration := application.NewRegistrationService(repos.accounts, repos.entrepreneurs, repos.groups, security.NewBcryptHasher(cfg.BcryptCost))
	projects := application.NewProjectService(repos.projects, repos.entrepreneurs, resolver)
	interests := application.NewProjectInterestService(repos.interests, repos.projects, repos.groups, resolver)
	events := application.NewEventService(repos.events, nil)

	if cfg.SeedSampleData {
		if err := application.SeedSampleData(ctx, registration, projects, events); err != nil {
			log.Fatalf("❌ Failed to seed sample data: %v", err)
		}
	}

	go scheduler.Run(ctx, events, cfg.EventSweepInterval)

	handler := rest.NewHandler(registration, projects, interests, events, i18n.NewTranslator(cfg.DefaultLocale))
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: rest.NewRouter(handler, cfg.CORSAllowedOrigins),
	}

	go func() {
		log.Printf("✅ Server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ Server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Graceful shutdown failed: %v", err)
		os.Exit(1)
	}
	log.Println("✅ Server stopped.")
}
