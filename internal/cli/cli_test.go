package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jobboard/internal/config"
	"jobboard/internal/ui"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(in string, jsonOut bool) (*Context, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Context{
		In:         strings.NewReader(in),
		Out:        &out,
		Err:        &errOut,
		UI:         ui.New(&out, &errOut, ui.ColorNever, true),
		Config:     config.Config{Jobs: config.JobsConfig{PageSize: 4, MaxLimit: 100, SeedDefaults: true}},
		Logger:     zerolog.Nop(),
		JSONOutput: jsonOut,
		Version:    "1.2.3",
	}, &out, &errOut
}

func TestVersionCmd(t *testing.T) {
	ctx, out, _ := newTestContext("", false)
	require.NoError(t, (&VersionCmd{}).Run(ctx))
	assert.Equal(t, "1.2.3\n", out.String())
}

func TestListCmd_Table(t *testing.T) {
	ctx, out, _ := newTestContext("", false)
	require.NoError(t, (&ListCmd{Page: 3}).Run(ctx))

	text := out.String()
	assert.Contains(t, text, "ID")
	assert.Contains(t, text, "QA Engineer")
	assert.Contains(t, text, "Business Analyst")
	assert.NotContains(t, text, "WSO2")
	assert.Contains(t, text, "Page 3 of 3 (10 jobs)  1 2 [3]")
}

func TestListCmd_JSONWithFilters(t *testing.T) {
	ctx, out, _ := newTestContext("", true)
	cmd := &ListCmd{FilterFlags: FilterFlags{JobType: "full-time"}, Page: 1, PageSize: 12}
	require.NoError(t, cmd.Run(ctx))

	var got struct {
		Total      int `json:"total"`
		TotalPages int `json:"totalPages"`
		Items      []struct {
			JobType string `json:"jobType"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 8, got.Total)
	assert.Equal(t, 1, got.TotalPages)
	for _, it := range got.Items {
		assert.Equal(t, "full-time", it.JobType)
	}
}

func TestListCmd_NoMatches(t *testing.T) {
	ctx, _, errOut := newTestContext("", false)
	require.NoError(t, (&ListCmd{FilterFlags: FilterFlags{Search: "astronaut"}, Page: 1}).Run(ctx))
	assert.Contains(t, errOut.String(), "No jobs match")
}

func TestListCmd_BadPageSize(t *testing.T) {
	ctx, _, _ := newTestContext("", false)
	err := (&ListCmd{Page: 1, PageSize: 500}).Run(ctx)
	assert.ErrorContains(t, err, "--page-size")
}

func TestShowCmd(t *testing.T) {
	ctx, out, _ := newTestContext("", false)
	require.NoError(t, (&ShowCmd{ID: "9"}).Run(ctx))
	assert.Contains(t, out.String(), "QA Engineer")
	assert.Contains(t, out.String(), "Zone24x7")
	assert.Contains(t, out.String(), "Posted 2024-01-07")

	err := (&ShowCmd{ID: "404"}).Run(ctx)
	assert.ErrorContains(t, err, `job "404" not found`)
}

func TestBrowseCmd(t *testing.T) {
	script := strings.Join([]string{
		"n",
		"n",
		"n",
		"g 9",
		"t full-time",
		"t freelance",
		"l kandy",
		"open 9",
		"clear",
		"bogus",
		"q",
		"n",
	}, "\n")
	ctx, out, errOut := newTestContext(script, false)
	require.NoError(t, (&BrowseCmd{}).Run(ctx))

	text := out.String()
	assert.Contains(t, text, "Page 1 of 3 (10 jobs)")
	assert.Contains(t, text, "Page 3 of 3 (10 jobs)")
	assert.Contains(t, text, "Page 1 of 2 (8 jobs)")
	assert.Contains(t, text, `Filters: type=full-time location="kandy"`)
	assert.Contains(t, text, "Apply: ")

	warnings := errOut.String()
	assert.Contains(t, warnings, "Already on the last page.")
	assert.Contains(t, warnings, `No page "9".`)
	assert.Contains(t, warnings, `Unknown job type "freelance".`)
	assert.Contains(t, warnings, `Unknown command "bogus"`)
}

func TestBrowseCmd_Add(t *testing.T) {
	script := strings.Join([]string{
		"n",
		"add",
		"Go Developer", "Acme", "Remote", "contract", "Build services.", "", "", "Go, SQL, ",
		"add",
		"", "Acme", "Remote", "contract", "Nothing here.", "", "", "",
		"s go developer",
		"q",
	}, "\n")
	ctx, out, errOut := newTestContext(script, false)
	require.NoError(t, (&BrowseCmd{}).Run(ctx))

	text := out.String()
	assert.Contains(t, text, "Page 2 of 3 (10 jobs)")
	assert.Contains(t, text, "Added Go Developer (")
	assert.Contains(t, text, "Page 1 of 3 (11 jobs)")
	assert.Contains(t, text, `Filters: search="go developer"`)
	assert.Contains(t, errOut.String(), "Missing required fields: title")
}

func TestBrowseCmd_AddCancelledAtEOF(t *testing.T) {
	ctx, _, errOut := newTestContext("add\nHalf A Job\n", false)
	require.NoError(t, (&BrowseCmd{}).Run(ctx))
	assert.Contains(t, errOut.String(), "Add cancelled.")
}

func TestBrowseCmd_EOF(t *testing.T) {
	ctx, _, _ := newTestContext("s engineer\n", false)
	assert.NoError(t, (&BrowseCmd{PageSize: 2}).Run(ctx))
}
