// Package format converts raw job data into display strings.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Salary renders a range like "$80k - $120k"; non-USD currencies keep
// their code as a prefix.
func Salary(min, max int, currency string) string {
	if currency == "USD" || currency == "" {
		return fmt.Sprintf("$%s - $%s", compactNumber(min), compactNumber(max))
	}
	return fmt.Sprintf("%s %s - %s", currency, compactNumber(min), compactNumber(max))
}

func compactNumber(n int) string {
	if n >= 1000 {
		return strconv.Itoa(n/1000) + "k"
	}
	return strconv.Itoa(n)
}

// PostedAt renders a relative age: "Just now", "3h ago", "2d ago", and
// the plain date past a week.
func PostedAt(postedAt, now time.Time) string {
	hours := int(now.Sub(postedAt).Hours())
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case hours < 24*7:
		return fmt.Sprintf("%dd ago", hours/24)
	default:
		return postedAt.Format("1/2/2006")
	}
}

func Truncate(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength] + "..."
}

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Initials builds up to two uppercase initials from a display name.
func Initials(name string) string {
	var initials strings.Builder
	for _, word := range strings.Fields(name) {
		initials.WriteString(strings.ToUpper(word[:1]))
		if initials.Len() == 2 {
			break
		}
	}
	return initials.String()
}

// JobMatch scores how many of a job's requirements a user's skills
// cover, as a rounded percentage.
func JobMatch(userSkills, requirements []string) int {
	if len(requirements) == 0 {
		return 0
	}

	matches := 0
	for _, requirement := range requirements {
		for _, skill := range userSkills {
			lowSkill, lowReq := strings.ToLower(skill), strings.ToLower(requirement)
			if strings.Contains(lowSkill, lowReq) || strings.Contains(lowReq, lowSkill) {
				matches++
				break
			}
		}
	}

	return int(float64(matches)/float64(len(requirements))*100 + 0.5)
}
