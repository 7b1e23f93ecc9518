package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/jobscout/jobscout/internal/api"
	"github.com/jobscout/jobscout/internal/catalog"
	"github.com/jobscout/jobscout/internal/config"
	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/metrics"
	"github.com/jobscout/jobscout/internal/services"
	"github.com/jobscout/jobscout/internal/state"
	"github.com/jobscout/jobscout/internal/store"
	log "github.com/sirupsen/logrus"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(ctx, cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.API.MetricsPort)

	kv, closer, err := store.Open(cfg.DB.Driver, cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't open store: %v", err)
	}
	defer closer.Close()

	jobCatalog := catalog.New(cfg.Jobs.CatalogSize)
	jobsService := services.NewJobsService(jobCatalog, cfg.Jobs.PageSize)
	authService := services.NewAuthService()

	cleaner, err := services.NewRecentCleaner(kv, cfg.Jobs.RecentExpirationDays)
	if err != nil {
		log.Fatalf("can't create recent cleaner: %v", err)
	}
	defer cleaner.Stop()

	bus := EventBus.New()

	authSlice := state.NewAuthSlice(authService, kv, bus)
	jobsSlice, err := state.NewJobsSlice(jobsService, kv, bus)
	if err != nil {
		log.Fatalf("can't create jobs slice: %v", err)
	}
	if _, err = state.NewUISlice(bus); err != nil {
		log.Fatalf("can't create ui slice: %v", err)
	}

	if err = authSlice.Rehydrate(ctx); err != nil {
		log.Errorf("failed to rehydrate auth state: %v", err)
	}
	if authSlice.State().IsAuthenticated() {
		jobsSlice.LoadSavedJobs(ctx)
		jobsSlice.LoadRecentlyViewed(ctx)
	}

	server := api.NewServer(cfg.API, jobsService, authService)
	go server.Run()

	<-ctx.Done()

	log.Info("Shutting down services...")
	server.Stop()
	log.Info("Services stopped.")
}
