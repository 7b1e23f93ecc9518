package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/jobscout/jobscout/internal/entities"
	"github.com/jobscout/jobscout/internal/events"
	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/metrics"
	"github.com/jobscout/jobscout/internal/services"
	"github.com/jobscout/jobscout/internal/store"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const maxRecentlyViewed = 20

// JobsState holds the current page window plus the per-user job lists.
// SavedJobs and RecentlyViewed entries are snapshots taken at save/view
// time; later catalog changes never propagate into them.
type JobsState struct {
	Jobs           []entities.Job
	SavedJobs      []entities.Job
	RecentlyViewed []entities.Job
	IsLoading      bool
	SearchQuery    string
	Filters        entities.JobFilters
	HasMore        bool
	Page           int
}

func initialJobsState() JobsState {
	return JobsState{HasMore: true, Page: 1}
}

func reduceFetchPending(st JobsState, page int) JobsState {
	// load-more keeps the list on screen, only a fresh page 1 shows the
	// full loading state
	if page == 1 {
		st.IsLoading = true
	}
	return st
}

func reduceFetchSuccess(st JobsState, jobs []entities.Job, page int, hasMore bool) JobsState {
	st.IsLoading = false
	if page == 1 {
		st.Jobs = jobs
	} else {
		st.Jobs = append(st.Jobs, jobs...)
	}
	st.HasMore = hasMore
	st.Page = page
	return st
}

func reduceFetchFailure(st JobsState) JobsState {
	// already-loaded pages stay; the caller only loses the failed page
	st.IsLoading = false
	return st
}

func reduceSearchSuccess(st JobsState, jobs []entities.Job, query string, filters entities.JobFilters) JobsState {
	st.IsLoading = false
	st.Jobs = jobs
	st.SearchQuery = query
	st.Filters = filters
	st.Page = 1
	st.HasMore = true
	return st
}

func reduceSavedJobs(st JobsState, saved []entities.Job) JobsState {
	st.SavedJobs = saved
	return st
}

func reduceRecentlyViewed(st JobsState, recent []entities.Job) JobsState {
	st.RecentlyViewed = recent
	return st
}

type jobsQuerier interface {
	Query(ctx context.Context, page int, searchText string, filters entities.JobFilters) (services.QueryResult, error)
}

// JobsSlice owns the committed jobs state. Every fetch or search carries
// a generation: searches and page-1 fetches open a new one, and commits
// from an older generation are discarded, so a search started while a
// load-more is in flight always wins.
type JobsSlice struct {
	mu         sync.Mutex
	state      JobsState
	generation uint64
	jobs       jobsQuerier
	store      store.Store
	bus        EventBus.Bus
}

func NewJobsSlice(jobs jobsQuerier, kv store.Store, bus EventBus.Bus) (*JobsSlice, error) {
	s := &JobsSlice{state: initialJobsState(), jobs: jobs, store: kv, bus: bus}
	if err := bus.Subscribe(events.UserLoggedOutTopic, s.onUserLoggedOut); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JobsSlice) State() JobsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *JobsSlice) begin(supersede bool) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if supersede {
		s.generation++
	}
	return s.generation
}

// commitIf applies the reducer only when the request's generation is
// still current. Returns false for discarded stale commits.
func (s *JobsSlice) commitIf(gen uint64, reduce func(JobsState) JobsState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.state = reduce(s.state)
	return true
}

func (s *JobsSlice) commit(reduce func(JobsState) JobsState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state)
}

// FetchJobs loads one page. Page 1 replaces the list, later pages append;
// callers are responsible for not skipping pages.
func (s *JobsSlice) FetchJobs(ctx context.Context, page int, searchQuery string, filters entities.JobFilters) error {

	gen := s.begin(page == 1)
	s.commitIf(gen, func(st JobsState) JobsState {
		return reduceFetchPending(st, page)
	})

	result, err := s.jobs.Query(ctx, page, searchQuery, filters)
	if err != nil {
		s.commitIf(gen, reduceFetchFailure)
		return err
	}

	s.commitIf(gen, func(st JobsState) JobsState {
		return reduceFetchSuccess(st, result.Jobs, page, result.HasMore)
	})
	return nil
}

// Search replaces the list wholesale and resets pagination.
func (s *JobsSlice) Search(ctx context.Context, query string, filters entities.JobFilters) error {

	gen := s.begin(true)
	s.commitIf(gen, func(st JobsState) JobsState {
		return reduceFetchPending(st, 1)
	})

	result, err := s.jobs.Query(ctx, 1, query, filters)
	if err != nil {
		s.commitIf(gen, reduceFetchFailure)
		return err
	}

	if s.commitIf(gen, func(st JobsState) JobsState {
		return reduceSearchSuccess(st, result.Jobs, query, filters)
	}) {
		s.bus.Publish(events.SearchPerformedTopic, events.SearchPerformed{Query: query, Filters: filters})
	}
	return nil
}

// SaveJob is idempotent: an already-saved id is a no-op and no write
// happens.
func (s *JobsSlice) SaveJob(ctx context.Context, job entities.Job) error {

	s.mu.Lock()
	alreadySaved := lo.ContainsBy(s.state.SavedJobs, func(saved entities.Job) bool {
		return saved.ID == job.ID
	})
	if alreadySaved {
		s.mu.Unlock()
		return nil
	}
	saved := append(append([]entities.Job{}, s.state.SavedJobs...), job)
	s.state = reduceSavedJobs(s.state, saved)
	s.mu.Unlock()

	metrics.SavedJobsGauge.Set(float64(len(saved)))
	return s.persistJobs(ctx, store.KeySavedJobs, saved)
}

func (s *JobsSlice) UnsaveJob(ctx context.Context, jobID string) error {

	s.mu.Lock()
	saved := lo.Filter(s.state.SavedJobs, func(job entities.Job, _ int) bool {
		return job.ID != jobID
	})
	changed := len(saved) != len(s.state.SavedJobs)
	s.state = reduceSavedJobs(s.state, saved)
	s.mu.Unlock()

	if !changed {
		return nil
	}
	metrics.SavedJobsGauge.Set(float64(len(saved)))
	return s.persistJobs(ctx, store.KeySavedJobs, saved)
}

// AddRecentlyViewed moves the job to the front, deduplicating by id and
// capping the list at 20 snapshots.
func (s *JobsSlice) AddRecentlyViewed(ctx context.Context, job entities.Job) error {

	s.mu.Lock()
	recent := lo.Filter(s.state.RecentlyViewed, func(viewed entities.Job, _ int) bool {
		return viewed.ID != job.ID
	})
	recent = append([]entities.Job{job}, recent...)
	if len(recent) > maxRecentlyViewed {
		recent = recent[:maxRecentlyViewed]
	}
	s.state = reduceRecentlyViewed(s.state, recent)
	s.mu.Unlock()

	return s.persistJobs(ctx, store.KeyRecentlyViewed, recent)
}

// LoadSavedJobs reads the stored list; read or parse failure yields an
// empty list and never an error.
func (s *JobsSlice) LoadSavedJobs(ctx context.Context) {
	saved := s.loadJobs(ctx, store.KeySavedJobs)
	s.commit(func(st JobsState) JobsState {
		return reduceSavedJobs(st, saved)
	})
	metrics.SavedJobsGauge.Set(float64(len(saved)))
}

func (s *JobsSlice) LoadRecentlyViewed(ctx context.Context) {
	recent := s.loadJobs(ctx, store.KeyRecentlyViewed)
	s.commit(func(st JobsState) JobsState {
		return reduceRecentlyViewed(st, recent)
	})
}

func (s *JobsSlice) loadJobs(ctx context.Context, key string) []entities.Job {

	raw, err := s.store.Get(ctx, key)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to read %s: %v", key, err)
		return []entities.Job{}
	}
	if raw == nil {
		return []entities.Job{}
	}

	var jobs []entities.Job
	if err = json.Unmarshal(raw, &jobs); err != nil {
		log.Errorf("failed to parse %s, treating as empty: %v", key, err)
		return []entities.Job{}
	}
	return jobs
}

func (s *JobsSlice) persistJobs(ctx context.Context, key string, jobs []entities.Job) error {

	encoded, err := json.Marshal(jobs)
	if err != nil {
		return err
	}
	if err = s.store.Set(ctx, key, encoded); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to persist %s: %v", key, err)
		return &entities.StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (s *JobsSlice) onUserLoggedOut(events.UserLoggedOut) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = initialJobsState()
	metrics.SavedJobsGauge.Set(0)
}
