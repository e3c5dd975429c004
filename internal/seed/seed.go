// Package seed holds the demo listings the in-memory store starts with and the
// seed command writes to a SQL store.
package seed

import (
	"time"

	"jobhub/internal/model"
)

const day = 24 * time.Hour

func str(s string) *string { return &s }

// Jobs returns the demo jobs, dated relative to now.
func Jobs(now time.Time) []model.Job {
	return []model.Job{
		{
			ID:          1,
			Title:       "Senior Frontend Developer",
			Company:     "Innovative Tech Solutions",
			Description: "We are looking for a Senior Frontend Developer with 5+ years of experience in React.js to join our dynamic team.",
			Location:    str("Dubai, UAE"),
			Country:     str("United Arab Emirates"),
			JobType:     str(model.JobTypeFullTime),
			Salary:      str("$80K - $100K"),
			Remote:      true,
			URL:         "https://example.com/jobs/1",
			Source:      "LinkedIn",
			SourceID:    "linkedin-123",
			CreatedAt:   now.Add(-2 * day),
			Category:    str("Engineering"),
		},
		{
			ID:          2,
			Title:       "Product Marketing Manager",
			Company:     "Global Brands Inc.",
			Description: "We're seeking an experienced Product Marketing Manager to lead our go-to-market strategy for new product launches.",
			Location:    str("Cairo, Egypt"),
			Country:     str("Egypt"),
			JobType:     str(model.JobTypeFullTime),
			Salary:      str("$50K - $75K"),
			URL:         "https://example.com/jobs/2",
			Source:      "Bayt.com",
			SourceID:    "bayt-456",
			CreatedAt:   now.Add(-7 * day),
			Category:    str("Marketing"),
		},
		{
			ID:          3,
			Title:       "UX/UI Designer",
			Company:     "Creative Design Studio",
			Description: "Join our award-winning design team to create beautiful and intuitive user experiences for our clients across various industries.",
			Location:    str("Riyadh, Saudi Arabia"),
			Country:     str("Saudi Arabia"),
			JobType:     str(model.JobTypeFullTime),
			Salary:      str("$60K - $85K"),
			URL:         "https://example.com/jobs/3",
			Source:      "Wuzzuf",
			SourceID:    "wuzzuf-789",
			CreatedAt:   now.Add(-3 * day),
			Category:    str("Design"),
		},
		{
			ID:          4,
			Title:       "Data Analyst",
			Company:     "Data Insights Co.",
			Description: "We're looking for a Data Analyst with strong SQL and visualization skills to help drive business decisions through data insights.",
			Location:    str("Amman, Jordan"),
			Country:     str("Jordan"),
			JobType:     str(model.JobTypeFullTime),
			Salary:      str("$45K - $65K"),
			Remote:      true,
			URL:         "https://example.com/jobs/4",
			Source:      "GulfTalent",
			SourceID:    "gulftalent-101112",
			CreatedAt:   now,
			Category:    str("Engineering"),
		},
		{
			ID:          5,
			Title:       "Backend Developer",
			Company:     "Tech Innovations",
			Description: "Looking for a skilled backend developer with experience in Node.js and database design.",
			Location:    str("Abu Dhabi, UAE"),
			Country:     str("United Arab Emirates"),
			JobType:     str(model.JobTypeContract),
			Salary:      str("$70K - $90K"),
			Remote:      true,
			URL:         "https://example.com/jobs/5",
			Source:      "LinkedIn",
			SourceID:    "linkedin-131415",
			CreatedAt:   now.Add(-1 * day),
			Category:    str("Engineering"),
		},
	}
}

// JobSources returns the demo job boards, all approved.
func JobSources(now time.Time) []model.JobSource {
	return []model.JobSource{
		{
			ID:          1,
			Name:        "LinkedIn",
			URL:         "https://www.linkedin.com/jobs",
			Category:    "Job Board",
			Description: str("The world's largest professional network with job listings across all industries."),
			Approved:    true,
			CreatedAt:   now.Add(-30 * day),
		},
		{
			ID:          2,
			Name:        "Bayt.com",
			URL:         "https://www.bayt.com",
			Category:    "Job Board",
			Description: str("The leading job site in the Middle East and North Africa, connecting job seekers with employers."),
			Approved:    true,
			CreatedAt:   now.Add(-28 * day),
		},
		{
			ID:          3,
			Name:        "Wuzzuf",
			URL:         "https://wuzzuf.net",
			Category:    "Job Board",
			Description: str("Egypt's leading online recruitment platform connecting the best talent with top companies in the country."),
			Approved:    true,
			CreatedAt:   now.Add(-25 * day),
		},
		{
			ID:          4,
			Name:        "GulfTalent",
			URL:         "https://www.gulftalent.com",
			Category:    "Job Board",
			Description: str("Leading job site for professionals in the Middle East and Gulf region."),
			Approved:    true,
			CreatedAt:   now.Add(-20 * day),
		},
	}
}
