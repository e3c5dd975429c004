package handler

import "jobhub/internal/model"

// JobPage is a page of jobs, for the API docs.
type JobPage model.Page[model.JobView]

// JobSourcePage is a page of job sources, for the API docs.
type JobSourcePage model.Page[model.JobSource]
