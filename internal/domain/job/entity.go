package job

import (
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date used for PostedDate on the wire.
const DateLayout = "2006-01-02"

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
)

func Types() []Type {
	return []Type{TypeFullTime, TypePartTime, TypeContract, TypeInternship}
}

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship:
		return true
	default:
		return false
	}
}

// Label renders the type for display, e.g. "full-time" -> "Full time".
func (t Type) Label() string {
	s := string(t)
	if s == "" {
		return ""
	}
	s = strings.Replace(s, "-", " ", 1)
	return strings.ToUpper(s[:1]) + s[1:]
}

type Job struct {
	ID             string
	Title          string
	Company        string
	Location       string
	JobType        Type
	Description    string
	Requirements   []string
	Salary         string
	PostedDate     time.Time
	ApplicationURL string
}

// Draft is a Job before the store assigns its ID and PostedDate.
type Draft struct {
	Title          string
	Company        string
	Location       string
	JobType        Type
	Description    string
	Requirements   []string
	Salary         string
	ApplicationURL string
}

func (d Draft) Job(id string, posted time.Time) Job {
	return Job{
		ID:             id,
		Title:          d.Title,
		Company:        d.Company,
		Location:       d.Location,
		JobType:        d.JobType,
		Description:    d.Description,
		Requirements:   cloneStrings(d.Requirements),
		Salary:         d.Salary,
		PostedDate:     posted,
		ApplicationURL: d.ApplicationURL,
	}
}

func (j Job) Draft() Draft {
	return Draft{
		Title:          j.Title,
		Company:        j.Company,
		Location:       j.Location,
		JobType:        j.JobType,
		Description:    j.Description,
		Requirements:   cloneStrings(j.Requirements),
		Salary:         j.Salary,
		ApplicationURL: j.ApplicationURL,
	}
}

// Clone returns a copy that shares no slices with j.
func (j Job) Clone() Job {
	j.Requirements = cloneStrings(j.Requirements)
	return j
}

// PostedOn truncates t to its UTC calendar date.
func PostedOn(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
