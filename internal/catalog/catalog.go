package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jobscout/jobscout/internal/entities"
)

var companies = []string{"TechCorp", "InnovateLabs", "DataDriven Co.", "CloudFirst", "MobileTech", "StartupHub"}

var locations = []string{"San Francisco, CA", "New York, NY", "Austin, TX", "Seattle, WA", "Boston, MA", "Remote"}

var titles = []string{
	"Senior React Native Developer",
	"Frontend Engineer",
	"Full Stack Developer",
	"UX/UI Designer",
	"Product Manager",
	"Data Scientist",
	"DevOps Engineer",
	"Backend Developer",
	"Mobile App Developer",
	"Software Architect",
}

var categories = []string{
	"Technology",
	"Marketing",
	"Design",
	"Sales",
	"Customer Service",
	"Human Resources",
	"Finance",
	"Operations",
	"Engineering",
	"Healthcare",
}

var jobTypes = []entities.JobType{entities.FullTime, entities.PartTime, entities.Contract, entities.Remote}

var skillPool = []string{"React Native", "TypeScript", "JavaScript", "Redux", "RESTful APIs"}

// Generate derives every field of a synthetic job from its numeric id.
// Two calls with the same id and baseline return identical jobs.
func Generate(id int, baseline time.Time) entities.Job {
	title := titles[id%len(titles)]
	company := companies[id%len(companies)]
	digit := strconv.Itoa(id % 9)

	return entities.Job{
		ID:       strconv.Itoa(id),
		Title:    title,
		Company:  company,
		Location: locations[id%len(locations)],
		Description: fmt.Sprintf("We are looking for an experienced %s to join our team. "+
			"This is a great opportunity to work with cutting-edge technologies and make a real impact.",
			strings.ToLower(title)),
		Requirements: skillPool[:3+id%3],
		Salary: &entities.Salary{
			Min:      80000 + (id%5)*20000,
			Max:      120000 + (id%5)*30000,
			Currency: "USD",
		},
		Type:           jobTypes[id%len(jobTypes)],
		PostedAt:       baseline.AddDate(0, 0, -(id % 30)),
		ApplicationURL: "https://example.com/apply/" + strconv.Itoa(id),
		Logo: "https://via.placeholder.com/100x100/0" + strings.Repeat(digit, 6) +
			"/FFFFFF?text=" + company[:1],
		Category: categories[id%len(categories)],
	}
}

// Catalog is the full synthetic set of jobs: a couple of curated postings
// followed by generated ones. The posted-date baseline is captured once at
// construction, so lookups stay deterministic for the catalog's lifetime.
type Catalog struct {
	jobs     []entities.Job
	size     int
	baseline time.Time
}

func New(size int) *Catalog {
	return NewWithBaseline(size, time.Now())
}

func NewWithBaseline(size int, baseline time.Time) *Catalog {
	jobs := make([]entities.Job, 0, size+len(curated))
	jobs = append(jobs, curated...)
	for i := 1; i <= size; i++ {
		jobs = append(jobs, Generate(i, baseline))
	}
	return &Catalog{jobs: jobs, size: size, baseline: baseline}
}

// Jobs returns the catalog in its fixed order. Callers must not mutate
// the returned slice.
func (c *Catalog) Jobs() []entities.Job {
	return c.jobs
}

// ByID resolves curated jobs by exact id and synthesizes any numeric id,
// mirroring a backend that can serve details for every listed posting.
func (c *Catalog) ByID(id string) (entities.Job, error) {
	for _, job := range curated {
		if job.ID == id {
			return job, nil
		}
	}

	n, err := strconv.Atoi(id)
	if err != nil || n < 1 || n > c.size {
		return entities.Job{}, entities.ErrJobNotFound
	}
	return Generate(n, c.baseline), nil
}
