package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"jobboard/internal/domain/job"
	"jobboard/internal/usecase"
	"jobboard/internal/usecase/board"
)

const browseHelp = `Commands:
  n              next page
  p              previous page
  g <n>          go to page n
  s <text>       search title, company and description (empty clears)
  t <type>       job type: full-time, part-time, contract, internship, all
  l <location>   location contains (empty or "all" clears)
  c <company>    company contains (empty or "all" clears)
  clear          drop every filter
  open <id>      show a posting
  add            post a new job (prompts for each field)
  h              this help
  q              quit`

type BrowseCmd struct {
	PageSize int `help:"Postings per page (default from JOBS_PAGE_SIZE)."`
}

func (b *BrowseCmd) Run(ctx *Context) error {
	bg := context.Background()
	store, err := ctx.openStore(bg)
	if err != nil {
		return err
	}

	size := b.PageSize
	if size <= 0 {
		size = ctx.Config.Jobs.PageSize
	}
	sess, err := board.NewSession(bg, store, size, ctx.Logger)
	if err != nil {
		return err
	}
	defer sess.Watch(store)()

	b.render(ctx, sess)
	scanner := bufio.NewScanner(ctx.In)
	for {
		fmt.Fprint(ctx.Out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(ctx.Out)
			return scanner.Err()
		}

		quit, redraw := b.exec(ctx, sess, scanner, strings.TrimSpace(scanner.Text()))
		if quit {
			return nil
		}
		if redraw {
			b.render(ctx, sess)
		}
	}
}

// exec runs one browse command and reports whether to stop and whether the
// page changed.
func (b *BrowseCmd) exec(ctx *Context, sess *board.Session, in *bufio.Scanner, line string) (quit, redraw bool) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
		return false, false
	case "q", "quit", "exit":
		return true, false
	case "h", "help", "?":
		fmt.Fprintln(ctx.Out, browseHelp)
		return false, false
	case "n", "next":
		if !sess.NextPage() {
			ctx.UI.Warnf("Already on the last page.")
			return false, false
		}
		return false, true
	case "p", "prev":
		if !sess.PrevPage() {
			ctx.UI.Warnf("Already on the first page.")
			return false, false
		}
		return false, true
	case "g", "goto":
		n, err := strconv.Atoi(arg)
		if err != nil || !sess.GoToPage(n) {
			ctx.UI.Warnf("No page %q.", arg)
			return false, false
		}
		return false, true
	case "s", "search":
		sess.UpdateFilters(job.FilterPatch{Search: &arg})
		return false, true
	case "t", "type":
		if arg != "" && !strings.EqualFold(arg, job.All) && !job.Type(arg).Valid() {
			ctx.UI.Warnf("Unknown job type %q.", arg)
			return false, false
		}
		sess.UpdateFilters(job.FilterPatch{JobType: &arg})
		return false, true
	case "l", "location":
		sess.UpdateFilters(job.FilterPatch{Location: &arg})
		return false, true
	case "c", "company":
		sess.UpdateFilters(job.FilterPatch{Company: &arg})
		return false, true
	case "clear":
		sess.ClearFilters()
		return false, true
	case "open", "o":
		j, ok := sess.JobByID(arg)
		if !ok {
			ctx.UI.Warnf("Job %q not found.", arg)
			return false, false
		}
		writeJobDetail(ctx.UI, j)
		return false, false
	case "add", "a":
		return false, b.add(ctx, sess, in)
	default:
		ctx.UI.Warnf("Unknown command %q, type h for help.", cmd)
		return false, false
	}
}

// add prompts for a posting and stores it. The board goes back to page 1 on
// success.
func (b *BrowseCmd) add(ctx *Context, sess *board.Session, in *bufio.Scanner) bool {
	ask := func(label string) (string, bool) {
		fmt.Fprintf(ctx.Out, "%s: ", label)
		if !in.Scan() {
			fmt.Fprintln(ctx.Out)
			return "", false
		}
		return strings.TrimSpace(in.Text()), true
	}

	var input usecase.JobInput
	fields := []struct {
		label string
		dst   *string
	}{
		{"Title", &input.Title},
		{"Company", &input.Company},
		{"Location", &input.Location},
		{"Job type (full-time, part-time, contract, internship)", &input.JobType},
		{"Description", &input.Description},
		{"Salary (optional)", &input.Salary},
		{"Application URL (optional)", &input.ApplicationURL},
	}
	for _, f := range fields {
		v, ok := ask(f.label)
		if !ok {
			ctx.UI.Warnf("Add cancelled.")
			return false
		}
		*f.dst = v
	}
	reqs, ok := ask("Requirements (comma separated)")
	if !ok {
		ctx.UI.Warnf("Add cancelled.")
		return false
	}
	input.Requirements = strings.Split(reqs, ",")

	d, err := input.Draft()
	if err != nil {
		ctx.UI.Warnf("%v", err)
		return false
	}
	created, err := sess.AddJob(context.Background(), d)
	if err != nil {
		ctx.UI.Errorf("add job: %v", err)
		return false
	}
	ctx.UI.Successf("Added %s (%s).", created.Title, created.ID)
	return true
}

func (b *BrowseCmd) render(ctx *Context, sess *board.Session) {
	page := sess.Page()
	if f := sess.Filters(); sess.HasActiveFilters() {
		ctx.UI.Infof("Filters: %s", describeFilter(f))
	}
	if page.Total == 0 {
		ctx.UI.Warnf("No jobs match the current filters.")
		return
	}
	if err := writeJobTable(ctx.Out, page.Items); err != nil {
		ctx.UI.Errorf("%v", err)
		return
	}
	writePageFooter(ctx.UI, page)
}

func describeFilter(f job.Filter) string {
	n := f.Normalize()
	var parts []string
	if n.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", n.Search))
	}
	if n.JobType != "" {
		parts = append(parts, "type="+n.JobType)
	}
	if n.Location != "" {
		parts = append(parts, fmt.Sprintf("location=%q", n.Location))
	}
	if n.Company != "" {
		parts = append(parts, fmt.Sprintf("company=%q", n.Company))
	}
	return strings.Join(parts, " ")
}
