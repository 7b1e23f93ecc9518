package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jobscout/jobscout/internal/entities"
	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/store"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// RecentCleaner prunes recently-viewed snapshots whose posting date is
// older than the expiration window. Snapshots never refresh, so stale
// entries would otherwise survive forever.
type RecentCleaner struct {
	store            store.Store
	cron             *cron.Cron
	expirationInDays int
}

func NewRecentCleaner(kv store.Store, expirationInDays int) (*RecentCleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}

	rc := &RecentCleaner{
		store:            kv,
		cron:             cron.New(),
		expirationInDays: expirationInDays,
	}

	_, err := rc.cron.AddFunc("0 0 * * *", rc.cleanOldEntries)
	if err != nil {
		return nil, err
	}

	rc.cron.Start()
	log.Infof("recently-viewed cleaner started, expiration in days: %d", rc.expirationInDays)
	return rc, nil
}

func (rc *RecentCleaner) Stop() {
	rc.cron.Stop()
}

func (rc *RecentCleaner) cleanOldEntries() {

	ctx := context.Background()
	raw, err := rc.store.Get(ctx, store.KeyRecentlyViewed)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to read recently viewed jobs: %v", err)
		return
	}
	if raw == nil {
		return
	}

	var jobs []entities.Job
	if err = json.Unmarshal(raw, &jobs); err != nil {
		log.Errorf("failed to parse recently viewed jobs, dropping the list: %v", err)
		jobs = nil
	}

	cutoff := time.Now().AddDate(0, 0, -rc.expirationInDays)
	kept := lo.Filter(jobs, func(job entities.Job, _ int) bool {
		return job.PostedAt.After(cutoff)
	})

	if len(kept) == len(jobs) {
		return
	}

	encoded, err := json.Marshal(kept)
	if err != nil {
		log.Errorf("failed to encode recently viewed jobs: %v", err)
		return
	}
	if err = rc.store.Set(ctx, store.KeyRecentlyViewed, encoded); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to rewrite recently viewed jobs: %v", err)
		return
	}

	log.Infof("recently viewed jobs cleaned, removed: %d", len(jobs)-len(kept))
}
