package catalog

import (
	"testing"
	"time"

	"github.com/jobscout/jobscout/internal/entities"
	"github.com/stretchr/testify/assert"
)

var baseline = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func Test_Generate_IsDeterministic(t *testing.T) {

	for _, id := range []int{1, 7, 42, 99, 100} {
		first := Generate(id, baseline)
		second := Generate(id, baseline)
		assert.Equal(t, first, second)
	}
}

func Test_Generate_DerivesFieldsFromID(t *testing.T) {

	assert := assert.New(t)

	job := Generate(7, baseline)
	assert.Equal("7", job.ID)
	assert.Equal("Backend Developer", job.Title)
	assert.Equal("InnovateLabs", job.Company)
	assert.Equal("New York, NY", job.Location)
	assert.Equal("Operations", job.Category)
	assert.Equal(entities.Remote, job.Type)
	assert.Len(job.Requirements, 3+7%3)
	assert.Equal(80000+(7%5)*20000, job.Salary.Min)
	assert.Equal(120000+(7%5)*30000, job.Salary.Max)
	assert.Equal("USD", job.Salary.Currency)
	assert.Equal(baseline.AddDate(0, 0, -7), job.PostedAt)
	assert.Equal("https://example.com/apply/7", job.ApplicationURL)
	assert.Contains(job.Description, "backend developer")
}

func Test_Generate_RequirementsLengthCycles(t *testing.T) {

	for id := 1; id <= 9; id++ {
		job := Generate(id, baseline)
		assert.Len(t, job.Requirements, 3+id%3, "id %d", id)
	}
}

func Test_Catalog_ContainsCuratedAndGeneratedJobs(t *testing.T) {

	c := NewWithBaseline(100, baseline)
	jobs := c.Jobs()

	assert.Len(t, jobs, 102)
	assert.Equal(t, "TechCorp Inc.", jobs[0].Company)
	assert.Equal(t, "Design Studio", jobs[1].Company)
	assert.Equal(t, "1", jobs[2].ID)
}

func Test_Catalog_ByID_PrefersCuratedJobs(t *testing.T) {

	c := NewWithBaseline(100, baseline)

	job, err := c.ByID("1")
	assert.NoError(t, err)
	assert.Equal(t, "TechCorp Inc.", job.Company)

	job, err = c.ByID("50")
	assert.NoError(t, err)
	assert.Equal(t, Generate(50, baseline), job)
}

func Test_Catalog_ByID_UnknownID(t *testing.T) {

	c := NewWithBaseline(100, baseline)

	_, err := c.ByID("not-a-number")
	assert.ErrorIs(t, err, entities.ErrJobNotFound)

	_, err = c.ByID("101")
	assert.ErrorIs(t, err, entities.ErrJobNotFound)

	_, err = c.ByID("0")
	assert.ErrorIs(t, err, entities.ErrJobNotFound)
}
