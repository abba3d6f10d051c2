package job

import "strings"

// All is the filter sentinel meaning "no constraint".
const All = "all"

type Filter struct {
	Search   string
	JobType  string
	Location string
	Company  string
}

// FilterPatch changes only the fields that are set. A blank or "all" value
// clears the field.
type FilterPatch struct {
	Search   *string
	JobType  *string
	Location *string
	Company  *string
}

func (f Filter) Normalize() Filter {
	return Filter{
		Search:   strings.TrimSpace(f.Search),
		JobType:  constraint(f.JobType),
		Location: constraint(f.Location),
		Company:  constraint(f.Company),
	}
}

func (f Filter) IsEmpty() bool {
	n := f.Normalize()
	return n.Search == "" && n.JobType == "" && n.Location == "" && n.Company == ""
}

func (f Filter) Merge(p FilterPatch) Filter {
	if p.Search != nil {
		f.Search = *p.Search
	}
	if p.JobType != nil {
		f.JobType = constraint(*p.JobType)
	}
	if p.Location != nil {
		f.Location = constraint(*p.Location)
	}
	if p.Company != nil {
		f.Company = constraint(*p.Company)
	}
	return f
}

// Matches reports whether j satisfies every active predicate.
func (f Filter) Matches(j Job) bool {
	n := f.Normalize()
	if n.Search != "" {
		q := strings.ToLower(n.Search)
		if !containsFold(j.Title, q) && !containsFold(j.Company, q) && !containsFold(j.Description, q) {
			return false
		}
	}
	if n.JobType != "" && string(j.JobType) != n.JobType {
		return false
	}
	if n.Location != "" && !containsFold(j.Location, strings.ToLower(n.Location)) {
		return false
	}
	if n.Company != "" && !containsFold(j.Company, strings.ToLower(n.Company)) {
		return false
	}
	return true
}

// Apply returns the jobs matching f in input order. The input is
// never modified.
func Apply(jobs []Job, f Filter) []Job {
	out := make([]Job, 0, len(jobs))
	if f.IsEmpty() {
		return append(out, jobs...)
	}
	for _, j := range jobs {
		if f.Matches(j) {
			out = append(out, j)
		}
	}
	return out
}

type FilterOptions struct {
	JobTypes  []Type
	Locations []string
	Companies []string
}

// Options lists the distinct locations and companies in store order.
func Options(jobs []Job) FilterOptions {
	out := FilterOptions{
		JobTypes:  Types(),
		Locations: make([]string, 0),
		Companies: make([]string, 0),
	}
	seenLoc := make(map[string]struct{}, len(jobs))
	seenCo := make(map[string]struct{}, len(jobs))
	for _, j := range jobs {
		if _, ok := seenLoc[j.Location]; !ok && j.Location != "" {
			seenLoc[j.Location] = struct{}{}
			out.Locations = append(out.Locations, j.Location)
		}
		if _, ok := seenCo[j.Company]; !ok && j.Company != "" {
			seenCo[j.Company] = struct{}{}
			out.Companies = append(out.Companies, j.Company)
		}
	}
	return out
}

func constraint(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, All) {
		return ""
	}
	return v
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}
