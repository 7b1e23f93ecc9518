package events

import "github.com/jobscout/jobscout/internal/entities"

var SearchPerformedTopic = "SearchPerformedEvent"

type SearchPerformed struct {
	Query   string
	Filters entities.JobFilters
}

var UserLoggedOutTopic = "UserLoggedOutEvent"

type UserLoggedOut struct {
	UserID string
}
