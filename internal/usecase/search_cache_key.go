package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"jobboard/internal/domain/job"
)

const jobsSearchKeyPrefix = "jobs:search:"

type jobSearchCacheKeyInput struct {
	Search   string `json:"search"`
	JobType  string `json:"job_type"`
	Location string `json:"location"`
	Company  string `json:"company"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
	Gen      uint64 `json:"gen"`
}

// JobsSearchCacheKey hashes the normalised params with case folded, so
// requests that filter identically against the same store generation share
// one entry. Offset only counts when a limit is set.
func JobsSearchCacheKey(params JobListParams, generation uint64) string {
	f := params.filter().Normalize()
	in := jobSearchCacheKeyInput{
		Search:   strings.ToLower(f.Search),
		JobType:  f.JobType,
		Location: strings.ToLower(f.Location),
		Company:  strings.ToLower(f.Company),
		Limit:    params.Limit,
		Gen:      generation,
	}
	if params.Limit > 0 {
		in.Offset = params.Offset
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return jobsSearchKeyPrefix + hex.EncodeToString(sum[:])
}

func (p JobListParams) filter() job.Filter {
	return job.Filter{Search: p.Search, JobType: p.JobType, Location: p.Location, Company: p.Company}
}
