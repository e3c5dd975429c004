package query

import (
	"sort"

	"jobhub/internal/model"
)

// FilterJobs returns the jobs matching f, in their original order.
func FilterJobs(jobs []model.Job, f JobFilter) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for i := range jobs {
		if f.Matches(&jobs[i]) {
			out = append(out, jobs[i])
		}
	}
	return out
}

// SortJobs orders jobs in place by f.SortBy. Every order ends on the job ID so
// the result is total and paging through it is stable.
func SortJobs(jobs []model.Job, f JobFilter) {
	var less func(a, b *model.Job) bool

	switch f.SortBy {
	case SortSalary:
		less = func(a, b *model.Job) bool {
			ka, kb := a.SalarySortKey(), b.SalarySortKey()
			if !ka.Equal(kb) {
				return ka.GreaterThan(kb)
			}
			return a.ID < b.ID
		}
	case SortRelevance:
		less = func(a, b *model.Job) bool {
			if f.Search != "" {
				ra, rb := RelevanceRank(a, f.Search), RelevanceRank(b, f.Search)
				if ra != rb {
					return ra < rb
				}
			}
			return a.ID < b.ID
		}
	default:
		less = func(a, b *model.Job) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		}
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		return less(&jobs[i], &jobs[j])
	})
}

// Paginate cuts the page window out of items. Pages past the end are empty.
func Paginate[T any](items []T, p Pagination) model.Page[T] {
	total := len(items)
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}

	window := make([]T, end-start)
	copy(window, items[start:end])
	return model.NewPage(window, int64(total), p.Page, p.Limit)
}

// ListJobs runs the full pipeline: filter, sort, paginate.
func ListJobs(jobs []model.Job, f JobFilter, p Pagination) model.Page[model.Job] {
	matched := FilterJobs(jobs, f)
	SortJobs(matched, f)
	return Paginate(matched, p)
}
