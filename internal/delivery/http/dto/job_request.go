package dto

import "jobboard/internal/usecase"

// JobRequest is the create/replace body. Forms post requirements as repeated
// "requirements" fields.
type JobRequest struct {
	Title          string   `json:"title" form:"title"`
	Company        string   `json:"company" form:"company"`
	Location       string   `json:"location" form:"location"`
	JobType        string   `json:"jobType" form:"jobType"`
	Description    string   `json:"description" form:"description"`
	Requirements   []string `json:"requirements" form:"requirements"`
	Salary         string   `json:"salary" form:"salary"`
	ApplicationURL string   `json:"applicationUrl" form:"applicationUrl"`
}

func (r JobRequest) Input() usecase.JobInput {
	return usecase.JobInput{
		Title:          r.Title,
		Company:        r.Company,
		Location:       r.Location,
		JobType:        r.JobType,
		Description:    r.Description,
		Requirements:   r.Requirements,
		Salary:         r.Salary,
		ApplicationURL: r.ApplicationURL,
	}
}

type JobPatchRequest struct {
	Title          *string   `json:"title"`
	Company        *string   `json:"company"`
	Location       *string   `json:"location"`
	JobType        *string   `json:"jobType"`
	Description    *string   `json:"description"`
	Requirements   *[]string `json:"requirements"`
	Salary         *string   `json:"salary"`
	ApplicationURL *string   `json:"applicationUrl"`
}

func (r JobPatchRequest) Patch() usecase.JobPatch {
	return usecase.JobPatch{
		Title:          r.Title,
		Company:        r.Company,
		Location:       r.Location,
		JobType:        r.JobType,
		Description:    r.Description,
		Requirements:   r.Requirements,
		Salary:         r.Salary,
		ApplicationURL: r.ApplicationURL,
	}
}

// ValidationErrorData is returned as data on 400 validation failures.
type ValidationErrorData struct {
	MissingFields []string `json:"missingFields,omitempty"`
	InvalidFields []string `json:"invalidFields,omitempty"`
}
