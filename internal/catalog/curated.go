package catalog

import (
	"time"

	"github.com/jobscout/jobscout/internal/entities"
)

// curated postings are prepended to the generated set so the first page
// always carries realistic, hand-written data.
var curated = []entities.Job{
	{
		ID:             "1",
		Title:          "Senior React Native Developer",
		Company:        "TechCorp Inc.",
		Location:       "San Francisco, CA",
		Description:    "We are looking for an experienced React Native developer to join our mobile team.",
		Requirements:   []string{"React Native", "TypeScript", "Redux", "Jest"},
		Salary:         &entities.Salary{Min: 120000, Max: 150000, Currency: "USD"},
		Type:           entities.FullTime,
		PostedAt:       time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		ApplicationURL: "https://example.com/apply/1",
		Logo:           "https://via.placeholder.com/100x100/007AFF/FFFFFF?text=T",
		Category:       "Technology",
	},
	{
		ID:             "2",
		Title:          "UX/UI Designer",
		Company:        "Design Studio",
		Location:       "New York, NY",
		Description:    "Join our creative team as a UX/UI Designer working on mobile and web applications.",
		Requirements:   []string{"Figma", "Sketch", "User Research", "Prototyping"},
		Salary:         &entities.Salary{Min: 80000, Max: 100000, Currency: "USD"},
		Type:           entities.FullTime,
		PostedAt:       time.Date(2024, 1, 14, 14, 30, 0, 0, time.UTC),
		ApplicationURL: "https://example.com/apply/2",
		Logo:           "https://via.placeholder.com/100x100/5856D6/FFFFFF?text=D",
		Category:       "Design",
	},
}
