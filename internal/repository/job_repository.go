package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobhub/internal/model"
	"jobhub/internal/query"
)

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create inserts a job; salary bounds are derived by the model hook.
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return translate(r.db.WithContext(ctx).Create(job).Error)
}

// FindByID finds a job by ID.
func (r *jobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

// List runs the listing pipeline in SQL.
func (r *jobRepository) List(ctx context.Context, filter query.JobFilter, page query.Pagination) (model.Page[model.Job], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Job{}).Scopes(JobFilterScope(filter)).Count(&total).Error; err != nil {
		return model.Page[model.Job]{}, translate(err)
	}

	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Scopes(JobFilterScope(filter), JobOrderScope(filter)).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&jobs).Error
	if err != nil {
		return model.Page[model.Job]{}, translate(err)
	}

	return model.NewPage(jobs, total, page.Page, page.Limit), nil
}

// JobFilterScope narrows a jobs query to the rows matching filter. Category,
// job type, location, country and salary label compare case-sensitively on
// every dialect.
func JobFilterScope(f query.JobFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		exact := exactCollation(db)
		if f.Search != "" {
			like := containsPattern(strings.ToLower(f.Search))
			db = db.Where("(LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?)", like, like, like)
		}
		if f.Category != "" {
			db = db.Where("category = ?"+exact, f.Category)
		}
		if f.JobType != "" {
			db = db.Where("job_type = ?"+exact, f.JobType)
		}
		if f.Location != "" {
			db = db.Where("(location LIKE ?"+exact+" OR country = ?"+exact+")", containsPattern(f.Location), f.Location)
		}
		if f.Remote {
			db = db.Where("remote = ?", true)
		}
		if f.Salary != "" {
			band, ok := query.LookupSalaryBand(f.Salary)
			switch {
			case !ok:
				db = db.Where("salary = ?"+exact, f.Salary)
			case band.Max.Valid:
				db = db.Where("salary_min >= ? AND salary_min < ?", band.Min, band.Max.Decimal)
			default:
				db = db.Where("salary_min >= ?", band.Min)
			}
		}
		return db
	}
}

// exactCollation is the suffix that makes a text comparison byte-exact.
// MySQL's default utf8mb4 collation ignores case; Postgres already compares
// exactly.
func exactCollation(db *gorm.DB) string {
	if db.Dialector != nil && db.Dialector.Name() == "mysql" {
		return " COLLATE utf8mb4_bin"
	}
	return ""
}

// JobOrderScope applies the sort order of filter, ending on the primary key.
func JobOrderScope(f query.JobFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch f.SortBy {
		case query.SortSalary:
			return db.Order("COALESCE(salary_max, salary_min, 0) DESC").Order("id ASC")
		case query.SortRelevance:
			if f.Search == "" {
				return db.Order("id ASC")
			}
			// A single expression; GORM drops an expression when later columns merge into it.
			like := containsPattern(strings.ToLower(f.Search))
			return db.Order(clause.OrderBy{Expression: clause.Expr{
				SQL:                "CASE WHEN LOWER(title) LIKE ? THEN 0 WHEN LOWER(company) LIKE ? THEN 1 ELSE 2 END, id ASC",
				Vars:               []interface{}{like, like},
				WithoutParentheses: true,
			}})
		default:
			return db.Order("created_at DESC").Order("id DESC")
		}
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
