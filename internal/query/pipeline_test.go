package query

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobhub/internal/model"
	"jobhub/internal/seed"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func str(s string) *string { return &s }

func seededJobs() []model.Job {
	jobs := seed.Jobs(now)
	for i := range jobs {
		jobs[i].DeriveSalary()
	}
	return jobs
}

func engineeringJobs(n int) []model.Job {
	jobs := make([]model.Job, 0, n)
	for i := 1; i <= n; i++ {
		jobs = append(jobs, model.Job{
			ID:          uint(i),
			Title:       fmt.Sprintf("Engineer %d", i),
			Company:     "Acme",
			Description: "Build things",
			Category:    str("Engineering"),
			CreatedAt:   now.Add(time.Duration(i) * time.Hour),
		})
	}
	return jobs
}

func ids(jobs []model.Job) []uint {
	out := make([]uint, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestListJobs_CategoryRecentFirstPage(t *testing.T) {
	f := JobFilter{Category: "Engineering", SortBy: SortRecent}.Normalize()

	page := ListJobs(engineeringJobs(5), f, NewPagination(1, 2))

	assert.Equal(t, []uint{5, 4}, ids(page.Data))
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Limit)
}

func TestListJobs_PagesAreDisjointAndContiguous(t *testing.T) {
	jobs := engineeringJobs(7)
	f := JobFilter{}.Normalize()

	full := ListJobs(jobs, f, NewPagination(1, 100))
	var walked []uint
	for p := 1; p <= 3; p++ {
		page := ListJobs(jobs, f, NewPagination(p, 3))
		assert.LessOrEqual(t, len(page.Data), 3)
		assert.Equal(t, int64(7), page.Total)
		walked = append(walked, ids(page.Data)...)
	}

	assert.Equal(t, ids(full.Data), walked)
}

func TestListJobs_OutOfRangePageIsEmpty(t *testing.T) {
	page := ListJobs(engineeringJobs(3), JobFilter{}.Normalize(), NewPagination(5, 2))

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestJobFilter_Conjunction(t *testing.T) {
	filters := []JobFilter{
		{Search: "developer"},
		{Category: "Engineering", Remote: true},
		{Location: "UAE", JobType: model.JobTypeContract},
		{Location: "Egypt"},
		{Salary: "$80k - $100k"},
		{Search: "data", Category: "Engineering", Remote: true, Location: "Jordan"},
	}

	for _, f := range filters {
		f := f.Normalize()
		t.Run(fmt.Sprintf("%+v", f), func(t *testing.T) {
			all := seededJobs()
			page := ListJobs(all, f, NewPagination(1, 100))
			for i := range page.Data {
				assert.True(t, f.Matches(&page.Data[i]), "job %d", page.Data[i].ID)
			}
			want := 0
			for i := range all {
				if f.Matches(&all[i]) {
					want++
				}
			}
			assert.Equal(t, int64(want), page.Total)
		})
	}
}

func TestJobFilter_Matches(t *testing.T) {
	jobs := seededJobs()

	tests := []struct {
		name   string
		filter JobFilter
		want   []uint
	}{
		{"search is case-insensitive across fields", JobFilter{Search: "TECH"}, []uint{1, 5}},
		{"search matches description", JobFilter{Search: "node.js"}, []uint{5}},
		{"category all is no filter", JobFilter{Category: "all"}, []uint{1, 2, 3, 4, 5}},
		{"job type", JobFilter{JobType: model.JobTypeContract}, []uint{5}},
		{"location substring", JobFilter{Location: "UAE"}, []uint{1, 5}},
		{"location equals country", JobFilter{Location: "Saudi Arabia"}, []uint{3}},
		{"remote narrows", JobFilter{Remote: true}, []uint{1, 4, 5}},
		{"salary band", JobFilter{Salary: "$50k - $80k"}, []uint{2, 3, 5}},
		{"salary band by lower bound", JobFilter{Salary: "$30k - $50k"}, []uint{4}},
		{"unknown salary label matches exactly", JobFilter{Salary: "$45K - $65K"}, []uint{4}},
		{"any salary is no filter", JobFilter{Salary: AnySalary}, []uint{1, 2, 3, 4, 5}},
		{"no match", JobFilter{Category: "Legal"}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.filter.Normalize()
			f.SortBy = SortRelevance
			page := ListJobs(jobs, f, NewPagination(1, 100))
			assert.Equal(t, tt.want, ids(page.Data))
		})
	}
}

func TestSortJobs(t *testing.T) {
	t.Run("recent", func(t *testing.T) {
		jobs := seededJobs()
		SortJobs(jobs, JobFilter{}.Normalize())
		assert.Equal(t, []uint{4, 5, 1, 3, 2}, ids(jobs))
	})

	t.Run("salary by upper bound", func(t *testing.T) {
		jobs := seededJobs()
		SortJobs(jobs, JobFilter{SortBy: SortSalary}.Normalize())
		assert.Equal(t, []uint{1, 5, 3, 2, 4}, ids(jobs))
	})

	t.Run("salary puts unparsable last", func(t *testing.T) {
		jobs := []model.Job{
			{ID: 1, Salary: str("Competitive")},
			{ID: 2, Salary: str("$100k+")},
			{ID: 3},
			{ID: 4, Salary: str("$20K - $25K")},
		}
		for i := range jobs {
			jobs[i].DeriveSalary()
		}
		SortJobs(jobs, JobFilter{SortBy: SortSalary}.Normalize())
		assert.Equal(t, []uint{2, 4, 1, 3}, ids(jobs))
	})

	t.Run("relevance ranks title over company over description", func(t *testing.T) {
		jobs := []model.Job{
			{ID: 1, Title: "Accountant", Company: "Cloud Ltd", Description: "x"},
			{ID: 2, Title: "Writer", Company: "Acme", Description: "cloud docs"},
			{ID: 3, Title: "Cloud Engineer", Company: "Acme", Description: "x"},
		}
		SortJobs(jobs, JobFilter{Search: "cloud", SortBy: SortRelevance}.Normalize())
		assert.Equal(t, []uint{3, 1, 2}, ids(jobs))
	})

	t.Run("relevance without search keeps id order", func(t *testing.T) {
		jobs := seededJobs()
		jobs[0], jobs[4] = jobs[4], jobs[0]
		SortJobs(jobs, JobFilter{SortBy: SortRelevance}.Normalize())
		assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(jobs))
	})
}

func TestParseJobFilter(t *testing.T) {
	values := url.Values{
		"search":   {"  react "},
		"category": {"all"},
		"jobType":  {"Full Time"},
		"remote":   {"yes"},
		"salary":   {"Any Salary"},
		"sortBy":   {"bogus"},
	}

	f := ParseJobFilter(values)

	assert.Equal(t, "react", f.Search)
	assert.Empty(t, f.Category)
	assert.Equal(t, "Full Time", f.JobType)
	assert.False(t, f.Remote)
	assert.Empty(t, f.Salary)
	assert.Equal(t, SortRecent, f.SortBy)

	assert.True(t, ParseJobFilter(url.Values{"remote": {"true"}}).Remote)
	assert.Equal(t, SortSalary, ParseJobFilter(url.Values{"sortBy": {"Salary"}}).SortBy)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		page, limit string
		want        Pagination
	}{
		{"", "", Pagination{Page: 1, Limit: 10}},
		{"3", "5", Pagination{Page: 3, Limit: 5}},
		{"0", "-1", Pagination{Page: 1, Limit: 10}},
		{"abc", "1000", Pagination{Page: 1, Limit: MaxLimit}},
	}

	for _, tt := range tests {
		got := ParsePagination(url.Values{"page": {tt.page}, "limit": {tt.limit}})
		require.Equal(t, tt.want, got, "page=%q limit=%q", tt.page, tt.limit)
	}
	assert.Equal(t, 10, NewPagination(2, 10).Offset())
}

func TestSalaryBandContains(t *testing.T) {
	under, ok := LookupSalaryBand("under $30K")
	require.True(t, ok)
	top, ok := LookupSalaryBand("$100k+")
	require.True(t, ok)

	job := model.Job{Salary: str("$29,999")}
	job.DeriveSalary()
	assert.True(t, under.Contains(job.SalaryMin.Decimal))

	job = model.Job{Salary: str("$30K")}
	job.DeriveSalary()
	assert.False(t, under.Contains(job.SalaryMin.Decimal))

	job = model.Job{Salary: str("$250K")}
	job.DeriveSalary()
	assert.True(t, top.Contains(job.SalaryMin.Decimal))

	_, ok = LookupSalaryBand("$1M")
	assert.False(t, ok)
}
