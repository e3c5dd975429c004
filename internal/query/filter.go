// Package query holds the job listing pipeline: the filter and pagination
// inputs parsed from a request, the predicates a job must satisfy, the sort
// orders and the page window. The in-memory store runs it directly; the SQL
// store translates the same rules into GORM scopes.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"jobhub/internal/model"
)

// Sort orders accepted by the sortBy parameter.
const (
	SortRecent    = "recent"
	SortSalary    = "salary"
	SortRelevance = "relevance"
)

// Page size bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// JobFilter is the set of optional listing filters. Empty fields do not filter.
type JobFilter struct {
	Search   string
	Category string
	JobType  string
	Location string
	Remote   bool
	Salary   string
	SortBy   string
}

// Pagination is a validated page request.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination clamps page and limit into their valid ranges.
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset is the index of the first item on the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePagination reads page and limit, treating unparsable values as absent.
func ParsePagination(values url.Values) Pagination {
	return NewPagination(atoiOr(values.Get("page"), DefaultPage), atoiOr(values.Get("limit"), DefaultLimit))
}

// ParseJobFilter reads the listing filters from query parameters.
func ParseJobFilter(values url.Values) JobFilter {
	remote := strings.ToLower(strings.TrimSpace(values.Get("remote")))
	return JobFilter{
		Search:   values.Get("search"),
		Category: values.Get("category"),
		JobType:  values.Get("jobType"),
		Location: values.Get("location"),
		Remote:   remote == "true" || remote == "1",
		Salary:   values.Get("salary"),
		SortBy:   values.Get("sortBy"),
	}.Normalize()
}

// Normalize trims every field, clears "all"-style placeholders and defaults
// the sort order.
func (f JobFilter) Normalize() JobFilter {
	f.Search = strings.TrimSpace(f.Search)
	f.Category = clearPlaceholder(f.Category)
	f.JobType = clearPlaceholder(f.JobType)
	f.Location = clearPlaceholder(f.Location)
	f.Salary = clearPlaceholder(f.Salary)

	switch s := strings.ToLower(strings.TrimSpace(f.SortBy)); s {
	case SortSalary, SortRelevance:
		f.SortBy = s
	default:
		f.SortBy = SortRecent
	}
	return f
}

func clearPlaceholder(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") || strings.EqualFold(v, AnySalary) {
		return ""
	}
	return v
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// Matches reports whether job satisfies every filter in f.
func (f JobFilter) Matches(job *model.Job) bool {
	if f.Search != "" && RelevanceRank(job, f.Search) == noMatch {
		return false
	}
	if f.Category != "" && value(job.Category) != f.Category {
		return false
	}
	if f.JobType != "" && value(job.JobType) != f.JobType {
		return false
	}
	if f.Location != "" && !strings.Contains(value(job.Location), f.Location) && value(job.Country) != f.Location {
		return false
	}
	if f.Remote && !job.Remote {
		return false
	}
	if f.Salary != "" && !matchesSalary(job, f.Salary) {
		return false
	}
	return true
}

func matchesSalary(job *model.Job, label string) bool {
	band, ok := LookupSalaryBand(label)
	if !ok {
		return value(job.Salary) == label
	}
	return job.SalaryMin.Valid && band.Contains(job.SalaryMin.Decimal)
}

const noMatch = 3

// RelevanceRank ranks a search hit: 0 for the title, 1 for the company, 2 for
// the description. A job matching none of them ranks noMatch.
func RelevanceRank(job *model.Job, search string) int {
	needle := strings.ToLower(search)
	switch {
	case strings.Contains(strings.ToLower(job.Title), needle):
		return 0
	case strings.Contains(strings.ToLower(job.Company), needle):
		return 1
	case strings.Contains(strings.ToLower(job.Description), needle):
		return 2
	default:
		return noMatch
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
