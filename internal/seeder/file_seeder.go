package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

type fileRecord struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	JobType        string   `json:"jobType"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
	Salary         string   `json:"salary"`
	PostedDate     string   `json:"postedDate"`
	ApplicationURL string   `json:"applicationUrl"`
}

// FileSeeder reads postings from a JSON5 array. Records without an id get a
// generated one; records without a postedDate are dated today.
type FileSeeder struct {
	Path string
	Now  func() time.Time
}

func (s FileSeeder) Name() string { return "file:" + s.Path }

func (s FileSeeder) Jobs(ctx context.Context) ([]job.Job, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return ParseJobs(data, s.now())
}

func (s FileSeeder) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func ParseJobs(data []byte, now time.Time) ([]job.Job, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []job.Job{}, nil
	}

	var records []fileRecord
	if err := json5.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	out := make([]job.Job, 0, len(records))
	for i, r := range records {
		typ := job.Type(strings.TrimSpace(r.JobType))
		if !typ.Valid() {
			return nil, fmt.Errorf("record %d: invalid job type %q", i, r.JobType)
		}

		posted := job.PostedOn(now)
		if d := strings.TrimSpace(r.PostedDate); d != "" {
			t, err := time.Parse(job.DateLayout, d)
			if err != nil {
				return nil, fmt.Errorf("record %d: invalid postedDate %q", i, r.PostedDate)
			}
			posted = t
		}

		id := strings.TrimSpace(r.ID)
		if id == "" {
			id = uuid.NewString()
		}

		out = append(out, job.Job{
			ID:             id,
			Title:          strings.TrimSpace(r.Title),
			Company:        strings.TrimSpace(r.Company),
			Location:       strings.TrimSpace(r.Location),
			JobType:        typ,
			Description:    strings.TrimSpace(r.Description),
			Requirements:   r.Requirements,
			Salary:         strings.TrimSpace(r.Salary),
			PostedDate:     posted,
			ApplicationURL: strings.TrimSpace(r.ApplicationURL),
		})
	}
	return out, nil
}
