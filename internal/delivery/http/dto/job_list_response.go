package dto

import (
	"jobboard/internal/domain/job"
	"jobboard/internal/usecase"
)

type JobResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	JobType        string   `json:"jobType"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
	Salary         string   `json:"salary,omitempty"`
	PostedDate     string   `json:"postedDate"`
	ApplicationURL string   `json:"applicationUrl,omitempty"`
}

func NewJobResponse(j job.Job) JobResponse {
	reqs := j.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	posted := ""
	if !j.PostedDate.IsZero() {
		posted = j.PostedDate.Format(job.DateLayout)
	}
	return JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Company:        j.Company,
		Location:       j.Location,
		JobType:        string(j.JobType),
		Description:    j.Description,
		Requirements:   reqs,
		Salary:         j.Salary,
		PostedDate:     posted,
		ApplicationURL: j.ApplicationURL,
	}
}

func NewJobResponses(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

type JobListResponse struct {
	Jobs    []JobResponse `json:"jobs"`
	Total   int           `json:"total"`
	HasMore bool          `json:"hasMore"`
}

func NewJobListResponse(res usecase.JobListResult) JobListResponse {
	return JobListResponse{Jobs: NewJobResponses(res.Jobs), Total: res.Total, HasMore: res.HasMore}
}

type BoardResponse struct {
	Items       []JobResponse `json:"items"`
	Total       int           `json:"total"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	PageSize    int           `json:"pageSize"`
	PageNumbers []int         `json:"pageNumbers"`
	HasPrev     bool          `json:"hasPrev"`
	HasNext     bool          `json:"hasNext"`
}

func NewBoardResponse(p usecase.BoardPage) BoardResponse {
	return BoardResponse{
		Items:       NewJobResponses(p.Items),
		Total:       p.Total,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		PageSize:    p.PageSize,
		PageNumbers: p.PageNumbers,
		HasPrev:     p.HasPrev,
		HasNext:     p.HasNext,
	}
}

type JobTypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilterOptionsResponse struct {
	JobTypes  []JobTypeOption `json:"jobTypes"`
	Locations []string        `json:"locations"`
	Companies []string        `json:"companies"`
}

func NewFilterOptionsResponse(o job.FilterOptions) FilterOptionsResponse {
	types := make([]JobTypeOption, 0, len(o.JobTypes))
	for _, t := range o.JobTypes {
		types = append(types, JobTypeOption{Value: string(t), Label: t.Label()})
	}
	return FilterOptionsResponse{JobTypes: types, Locations: o.Locations, Companies: o.Companies}
}

type DeleteJobResponse struct {
	Message string      `json:"message"`
	Job     JobResponse `json:"job"`
}
