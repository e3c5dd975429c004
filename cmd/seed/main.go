package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"jobhub/internal/config"
	"jobhub/internal/db"
	"jobhub/internal/logging"
	"jobhub/internal/model"
	"jobhub/internal/seed"
)

// Seed writes the demo jobs and job sources into the SQL store named by
// STORE_DRIVER. Rows that already exist are left alone, so running it twice
// is harmless.
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.StoreDriver == config.DriverMemory {
		logger.Fatal("STORE_DRIVER=memory is seeded at startup; set mysql or postgres to seed a database")
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close(gormDB) //nolint:errcheck

	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	now := time.Now()
	jobs, err := seedJobs(gormDB, seed.Jobs(now))
	if err != nil {
		logger.Fatal("failed to seed jobs", zap.Error(err))
	}
	sources, err := seedJobSources(gormDB, seed.JobSources(now))
	if err != nil {
		logger.Fatal("failed to seed job sources", zap.Error(err))
	}

	logger.Info("seed completed", zap.Int("jobs_created", jobs), zap.Int("job_sources_created", sources))
}

// seedJobs inserts each job unless one with the same source and source id
// exists. IDs are left to the database so its sequence stays in step.
func seedJobs(gormDB *gorm.DB, jobs []model.Job) (int, error) {
	created := 0
	for _, job := range jobs {
		job.ID = 0
		res := gormDB.Where(model.Job{Source: job.Source, SourceID: job.SourceID}).FirstOrCreate(&job)
		if res.Error != nil {
			return created, res.Error
		}
		created += int(res.RowsAffected)
	}
	return created, nil
}

// seedJobSources inserts each source unless one with the same URL exists.
func seedJobSources(gormDB *gorm.DB, sources []model.JobSource) (int, error) {
	created := 0
	for _, source := range sources {
		source.ID = 0
		res := gormDB.Where(model.JobSource{URL: source.URL}).FirstOrCreate(&source)
		if res.Error != nil {
			return created, res.Error
		}
		created += int(res.RowsAffected)
	}
	return created, nil
}
