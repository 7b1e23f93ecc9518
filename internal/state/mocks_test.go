package state

import (
	"context"
	"sync"

	"github.com/jobscout/jobscout/internal/entities"
	"github.com/jobscout/jobscout/internal/services"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

type memoryStore struct {
	mu      sync.Mutex
	values  map[string][]byte
	failSet bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string][]byte{}}
}

func (m *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, found := m.values[key]
	if !found {
		return nil, nil
	}
	return value, nil
}

func (m *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("disk full")
	}
	m.values[key] = value
	return nil
}

func (m *memoryStore) Remove(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

type mockQuerier struct {
	mock.Mock
}

func (m *mockQuerier) Query(ctx context.Context, page int, searchText string, filters entities.JobFilters) (services.QueryResult, error) {
	args := m.Called(ctx, page, searchText, filters)
	return args.Get(0).(services.QueryResult), args.Error(1)
}

func makeJobs(prefix string, count int) []entities.Job {
	jobs := make([]entities.Job, count)
	for i := range jobs {
		jobs[i] = entities.Job{
			ID:    prefix + string(rune('a'+i)),
			Title: "Job " + prefix,
		}
	}
	return jobs
}
