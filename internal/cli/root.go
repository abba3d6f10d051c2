package cli

import "github.com/alecthomas/kong"

type CLI struct {
	Color      string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON       bool   `help:"JSON output to stdout; disables colors."`
	Verbose    bool   `help:"Enable debug logging."`
	SeedFile   string `help:"JSON5 file with postings to load instead of the samples." type:"path"`
	NoDefaults bool   `help:"Do not load the built-in sample postings."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version VersionCmd `cmd:"" help:"Print version."`
	List    ListCmd    `cmd:"" help:"List one page of job postings."`
	Show    ShowCmd    `cmd:"" help:"Show a single job posting."`
	Browse  BrowseCmd  `cmd:"" help:"Browse postings interactively."`
}

func NewCLI() *CLI {
	return &CLI{}
}

// FilterFlags are shared by commands that narrow the postings.
type FilterFlags struct {
	Search   string `short:"s" help:"Text to find in title, company or description."`
	JobType  string `name:"type" short:"t" help:"Job type (full-time, part-time, contract, internship)." enum:",all,full-time,part-time,contract,internship" default:""`
	Location string `short:"l" help:"Location contains."`
	Company  string `short:"c" help:"Company contains."`
}
