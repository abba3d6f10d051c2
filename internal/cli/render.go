package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"jobboard/internal/domain/job"
	"jobboard/internal/ui"
	"jobboard/internal/usecase"
)

const maxCell = 32

func writeJobTable(w io.Writer, jobs []job.Job) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCOMPANY\tLOCATION\tTYPE\tPOSTED")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(j.ID, 12),
			truncate(j.Title, maxCell),
			truncate(j.Company, maxCell),
			truncate(j.Location, maxCell),
			j.JobType.Label(),
			j.PostedDate.Format(job.DateLayout),
		)
	}
	return tw.Flush()
}

// writePageFooter prints "Page 2 of 3 (25 jobs)  1 [2] 3", or just the count
// when everything fits on one page.
func writePageFooter(u *ui.UI, p usecase.BoardPage) {
	if p.TotalPages <= 1 {
		u.Infof("%d jobs", p.Total)
		return
	}
	nums := make([]string, 0, len(p.PageNumbers))
	for _, n := range p.PageNumbers {
		s := strconv.Itoa(n)
		if n == p.CurrentPage {
			s = "[" + s + "]"
		}
		nums = append(nums, s)
	}
	u.Infof("Page %d of %d (%d jobs)  %s", p.CurrentPage, p.TotalPages, p.Total, strings.Join(nums, " "))
}

func writeJobDetail(u *ui.UI, j job.Job) {
	w := u.Out
	fmt.Fprintln(w, u.Bold(j.Title))
	fmt.Fprintf(w, "%s · %s · %s\n", j.Company, j.Location, j.JobType.Label())
	fmt.Fprintln(w, u.Faint("Posted "+j.PostedDate.Format(job.DateLayout)+" · id "+j.ID))
	if j.Salary != "" {
		fmt.Fprintf(w, "Salary: %s\n", j.Salary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, j.Description)
	if len(j.Requirements) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Requirements:")
		for _, r := range j.Requirements {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}
	if j.ApplicationURL != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Apply: %s\n", u.LinkText(j.ApplicationURL))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
