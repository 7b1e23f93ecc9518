package entities

import (
	"errors"
	"time"
)

type JobType string

const (
	FullTime JobType = "full-time"
	PartTime JobType = "part-time"
	Contract JobType = "contract"
	Remote   JobType = "remote"
)

func ToJobType(s string) (JobType, error) {
	switch s {
	case string(FullTime):
		return FullTime, nil
	case string(PartTime):
		return PartTime, nil
	case string(Contract):
		return Contract, nil
	case string(Remote):
		return Remote, nil
	default:
		return "", errors.New("invalid job type")
	}
}

type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Requirements   []string  `json:"requirements"`
	Salary         *Salary   `json:"salary,omitempty"`
	Type           JobType   `json:"type"`
	PostedAt       time.Time `json:"postedAt"`
	ApplicationURL string    `json:"applicationUrl"`
	Logo           string    `json:"logo,omitempty"`
	Category       string    `json:"category"`
}

type SalaryBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// JobFilters are AND-combined; every field is optional and a zero value
// means "no constraint".
type JobFilters struct {
	Location    string        `json:"location,omitempty" form:"location"`
	Type        JobType       `json:"type,omitempty" form:"type"`
	Category    string        `json:"category,omitempty" form:"category"`
	SalaryRange *SalaryBounds `json:"salaryRange,omitempty"`
}

func (f JobFilters) IsZero() bool {
	return f.Location == "" && f.Type == "" && f.Category == "" && f.SalaryRange == nil
}
