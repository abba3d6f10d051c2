package seeder

import (
	"context"
	"time"

	"jobboard/internal/domain/job"
)

// JobSeeder provides the sample postings the board ships with.
type JobSeeder struct{}

func (JobSeeder) Name() string { return "jobs" }

func (JobSeeder) Jobs(ctx context.Context) ([]job.Job, error) {
	return DefaultJobs(), nil
}

func DefaultJobs() []job.Job {
	return []job.Job{
		{
			ID:             "1",
			Title:          "Senior Frontend Developer",
			Company:        "WSO2",
			Location:       "Colombo, Sri Lanka",
			JobType:        job.TypeFullTime,
			Description:    "We are looking for a Senior Frontend Developer to join our dynamic team. You will be responsible for building user-facing features using modern web technologies.",
			Requirements:   []string{"React", "TypeScript", "Next.js", "5+ years experience"},
			Salary:         "LKR 200,000 - LKR 300,000",
			PostedDate:     day(2024, 1, 15),
			ApplicationURL: "https://example.com/apply/1",
		},
		{
			ID:             "2",
			Title:          "Backend Engineer",
			Company:        "Sysco Labs",
			Location:       "Colombo, Sri Lanka",
			JobType:        job.TypeFullTime,
			Description:    "Join our backend team to build scalable APIs and microservices. Experience with cloud platforms and databases required.",
			Requirements:   []string{"Node.js", "Python", "AWS", "PostgreSQL", "3+ years experience"},
			Salary:         "LKR 180,000 - LKR 250,000",
			PostedDate:     day(2024, 1, 14),
			ApplicationURL: "https://example.com/apply/2",
		},
		{
			ID:             "3",
			Title:          "UX Designer",
			Company:        "99X Technology",
			Location:       "Remote",
			JobType:        job.TypeContract,
			Description:    "We need a talented UX Designer to help create intuitive and engaging user experiences for our digital products.",
			Requirements:   []string{"Figma", "User Research", "Prototyping", "2+ years experience"},
			Salary:         "LKR 3,000 - LKR 5,000/hour",
			PostedDate:     day(2024, 1, 13),
			ApplicationURL: "https://example.com/apply/3",
		},
		{
			ID:             "4",
			Title:          "DevOps Engineer",
			Company:        "Virtusa",
			Location:       "Colombo, Sri Lanka",
			JobType:        job.TypeFullTime,
			Description:    "Looking for a DevOps Engineer to manage our infrastructure and deployment pipelines. Strong automation skills required.",
			Requirements:   []string{"Docker", "Kubernetes", "CI/CD", "Terraform", "4+ years experience"},
			Salary:         "LKR 220,000 - LKR 350,000",
			PostedDate:     day(2024, 1, 12),
			ApplicationURL: "https://example.com/apply/4",
		},
		{
			ID:             "5",
			Title:          "Product Manager",
			Company:        "IFS",
			Location:       "Colombo, Sri Lanka",
			JobType:        job.TypeFullTime,
			Description:    "Seeking an experienced Product Manager to drive product strategy and work closely with engineering and design teams.",
			Requirements:   []string{"Product Strategy", "Agile", "Analytics", "3+ years experience"},
			Salary:         "LKR 250,000 - LKR 400,000",
			PostedDate:     day(2024, 1, 11),
			ApplicationURL: "https://example.com/apply/5",
		},
		{
			ID:             "6",
			Title:          "Marketing Intern",
			Company:        "PickMe",
			Location:       "Colombo, Sri Lanka",
			JobType:        job.TypeInternship,
			Description:    "Great opportunity for a marketing student to gain hands-on experience in digital marketing and content creation.",
			Requirements:   []string{"Marketing fundamentals", "Social Media", "Content Creation"},
			Salary:         "LKR 25,000/month",
			PostedDate:     day(2024, 1, 10),
			ApplicationURL: "https://example.com/apply/6",
		},
		{
			ID:             "7",
			Title:          "Mobile App Developer",
			Company:        "CodeGen International",
			Location:       "Colombo, Sri Lanka",
			JobType:        job.TypeFullTime,
			Description:    "Join our mobile development team to create innovative mobile applications for iOS and Android platforms.",
			Requirements:   []string{"React Native", "Flutter", "Swift", "Kotlin", "2+ years experience"},
			Salary:         "LKR 150,000 - LKR 250,000",
			PostedDate:     day(2024, 1, 9),
			ApplicationURL: "https://example.com/apply/7",
		},
		{
			ID:             "8",
			Title:          "Data Scientist",
			Company:        "MillenniumIT ESP",
			Location:       "Colombo, Sri Lanka",
			JobType:        job.TypeFullTime,
			Description:    "We are seeking a Data Scientist to analyze complex data sets and build machine learning models for our financial technology solutions.",
			Requirements:   []string{"Python", "Machine Learning", "SQL", "Statistics", "3+ years experience"},
			Salary:         "LKR 200,000 - LKR 350,000",
			PostedDate:     day(2024, 1, 8),
			ApplicationURL: "https://example.com/apply/8",
		},
		{
			ID:             "9",
			Title:          "QA Engineer",
			Company:        "Zone24x7",
			Location:       "Kandy, Sri Lanka",
			JobType:        job.TypeFullTime,
			Description:    "Looking for a QA Engineer to ensure the quality of our software products through comprehensive testing strategies.",
			Requirements:   []string{"Selenium", "Jest", "Manual Testing", "API Testing", "2+ years experience"},
			Salary:         "LKR 120,000 - LKR 200,000",
			PostedDate:     day(2024, 1, 7),
			ApplicationURL: "https://example.com/apply/9",
		},
		{
			ID:             "10",
			Title:          "Business Analyst",
			Company:        "John Keells IT",
			Location:       "Colombo, Sri Lanka",
			JobType:        job.TypeFullTime,
			Description:    "Seeking a Business Analyst to bridge the gap between business stakeholders and technical teams in our digital transformation initiatives.",
			Requirements:   []string{"Business Analysis", "Agile", "Documentation", "Stakeholder Management", "3+ years experience"},
			Salary:         "LKR 180,000 - LKR 280,000",
			PostedDate:     day(2024, 1, 6),
			ApplicationURL: "https://example.com/apply/10",
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
