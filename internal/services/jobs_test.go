package services

import (
	"context"
	"testing"
	"time"

	"github.com/jobscout/jobscout/internal/catalog"
	"github.com/jobscout/jobscout/internal/entities"
	"github.com/stretchr/testify/assert"
)

func newTestJobsService() *JobsService {
	baseline := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewJobsService(catalog.NewWithBaseline(100, baseline), 10)
}

func Test_Query_FirstPageHasPageSizeItems(t *testing.T) {

	service := newTestJobsService()

	result, err := service.Query(context.Background(), 1, "", entities.JobFilters{})
	assert.NoError(t, err)
	assert.Len(t, result.Jobs, 10)
	assert.Equal(t, 102, result.Total)
	assert.True(t, result.HasMore)
	assert.Equal(t, 1, result.Page)
}

func Test_Query_LastPageIsShortAndFinal(t *testing.T) {

	service := newTestJobsService()

	result, err := service.Query(context.Background(), 11, "", entities.JobFilters{})
	assert.NoError(t, err)
	assert.Len(t, result.Jobs, 2)
	assert.False(t, result.HasMore)
}

func Test_Query_PageBeyondRangeIsEmpty(t *testing.T) {

	service := newTestJobsService()

	result, err := service.Query(context.Background(), 50, "", entities.JobFilters{})
	assert.NoError(t, err)
	assert.Empty(t, result.Jobs)
	assert.False(t, result.HasMore)
}

func Test_Query_RejectsNonPositivePage(t *testing.T) {

	service := newTestJobsService()

	_, err := service.Query(context.Background(), 0, "", entities.JobFilters{})
	assert.Error(t, err)
}

func Test_Query_SearchMatchesAcrossFields(t *testing.T) {

	assert := assert.New(t)
	service := newTestJobsService()

	byTitle, err := service.Query(context.Background(), 1, "designer", entities.JobFilters{})
	assert.NoError(err)
	assert.NotEmpty(byTitle.Jobs)
	for _, job := range byTitle.Jobs {
		assert.Contains(job.Title, "Designer")
	}

	byCompany, err := service.Query(context.Background(), 1, "techcorp", entities.JobFilters{})
	assert.NoError(err)
	assert.NotEmpty(byCompany.Jobs)

	byLocation, err := service.Query(context.Background(), 1, "austin", entities.JobFilters{})
	assert.NoError(err)
	assert.NotEmpty(byLocation.Jobs)

	none, err := service.Query(context.Background(), 1, "no such text anywhere", entities.JobFilters{})
	assert.NoError(err)
	assert.Empty(none.Jobs)
	assert.Zero(none.Total)
}

func Test_Query_FiltersAreCombinedWithAnd(t *testing.T) {

	assert := assert.New(t)
	service := newTestJobsService()

	filters := entities.JobFilters{Location: "remote", Type: entities.FullTime}
	result, err := service.Query(context.Background(), 1, "", filters)
	assert.NoError(err)
	for _, job := range result.Jobs {
		assert.Equal("Remote", job.Location)
		assert.Equal(entities.FullTime, job.Type)
	}
}

func Test_Query_AddingFilterNeverGrowsResult(t *testing.T) {

	service := newTestJobsService()
	ctx := context.Background()

	unfiltered, err := service.Query(ctx, 1, "", entities.JobFilters{})
	assert.NoError(t, err)

	byCategory, err := service.Query(ctx, 1, "", entities.JobFilters{Category: "Technology"})
	assert.NoError(t, err)
	assert.LessOrEqual(t, byCategory.Total, unfiltered.Total)

	narrowed, err := service.Query(ctx, 1, "", entities.JobFilters{
		Category: "Technology",
		Type:     entities.FullTime,
	})
	assert.NoError(t, err)
	assert.LessOrEqual(t, narrowed.Total, byCategory.Total)
}

func Test_Query_SalaryRangeRequiresFullContainment(t *testing.T) {

	service := newTestJobsService()

	filters := entities.JobFilters{SalaryRange: &entities.SalaryBounds{Min: 100000, Max: 200000}}
	result, err := service.Query(context.Background(), 1, "", filters)
	assert.NoError(t, err)
	for _, job := range result.Jobs {
		assert.NotNil(t, job.Salary)
		assert.GreaterOrEqual(t, job.Salary.Min, 100000)
		assert.LessOrEqual(t, job.Salary.Max, 200000)
	}
}

func Test_JobByID_ReturnsCachedCopy(t *testing.T) {

	service := newTestJobsService()

	first, err := service.JobByID(context.Background(), "42")
	assert.NoError(t, err)

	second, err := service.JobByID(context.Background(), "42")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func Test_JobByID_UnknownIDFails(t *testing.T) {

	service := newTestJobsService()

	_, err := service.JobByID(context.Background(), "bogus")
	assert.ErrorIs(t, err, entities.ErrJobNotFound)
}

func Test_PopularJobs_ReturnsTopFive(t *testing.T) {

	service := newTestJobsService()

	jobs, err := service.PopularJobs(context.Background())
	assert.NoError(t, err)
	assert.Len(t, jobs, 5)
}

func Test_Apply_ReturnsReceiptWithUniqueID(t *testing.T) {

	service := newTestJobsService()

	first, err := service.Apply(context.Background(), "1", Application{CoverLetter: "hello"})
	assert.NoError(t, err)
	assert.Equal(t, "1", first.JobID)
	assert.NotEmpty(t, first.ApplicationID)

	second, err := service.Apply(context.Background(), "1", Application{})
	assert.NoError(t, err)
	assert.NotEqual(t, first.ApplicationID, second.ApplicationID)

	_, err = service.Apply(context.Background(), "bogus", Application{})
	assert.ErrorIs(t, err, entities.ErrJobNotFound)
}
