// internal/platform/ui/ui_test.go
package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"

	"biorules/internal/testutil"
)

func fixedRaw(format LogFormat) (*RawPresenter, *bytes.Buffer) {
	var buf bytes.Buffer
	r := NewRawPresenterWithWriter(&buf, format)
	r.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return r, &buf
}

func TestRawPresenter_Text(t *testing.T) {
	r, buf := fixedRaw(LogFormatText)

	r.Start(RunInfo{Chunk: 1, TotalChunks: 4, Start: 4, End: 8, Total: 10, Recipes: 3, Missing: 1, Workers: 2, Timeout: 20 * time.Second})
	r.RecipeDone(RecipeUpdate{Name: "samtools", Kind: "executable", Status: StatusSuccess, Done: 1, Total: 3})
	r.Warning("slow mirror detected")
	r.Finish(RunStats{Processed: 3, Rules: 2, Files: []string{"out/bioconda.rules.1.yml"}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 5, "one line per event plus files")
	testutil.AssertEqual(t, lines[0],
		"2024-05-01T12:00:00Z INFO  chunk_started chunk=1 total_chunks=4 start=4 end=8 directories=10 recipes=3 missing=1 workers=2 timeout=20s",
		"start line")
	testutil.AssertContains(t, lines[1], "recipe=samtools kind=executable status=success done=1 total=3", "recipe line")
	testutil.AssertContains(t, lines[2], "WARN  slow mirror detected", "warning line")
	testutil.AssertContains(t, lines[3], "processed=3 executable=0 rules=2", "summary line")
	testutil.AssertContains(t, lines[4], "file_written path=out/bioconda.rules.1.yml", "file line")
}

func TestRawPresenter_JSON(t *testing.T) {
	r, buf := fixedRaw(LogFormatJSON)
	r.RecipeDone(RecipeUpdate{Name: "pyfoo", Kind: "importable", Status: StatusSuccess, Done: 2, Total: 5})

	var entry map[string]interface{}
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &entry), "decode")
	testutil.AssertEqual(t, entry["message"], "recipe_done", "message")
	data := entry["data"].(map[string]interface{})
	testutil.AssertEqual(t, data["recipe"], "pyfoo", "recipe")
	testutil.AssertEqual(t, data["done"], float64(2), "done")
}

func TestRawPresenter_QuotesValues(t *testing.T) {
	r, _ := fixedRaw(LogFormatText)
	testutil.AssertEqual(t, r.formatValue("a b"), `"a b"`, "space quoted")
	testutil.AssertEqual(t, r.formatValue("plain"), "plain", "plain")
	testutil.AssertEqual(t, r.formatValue(1500*time.Millisecond), "1.5s", "duration")
}

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		kind   string
		want   Status
		symbol string
	}{
		{"executable", StatusSuccess, "✓"},
		{"importable", StatusSuccess, "✓"},
		{"ambiguous", StatusWarning, "⚠"},
		{"error", StatusError, "✗"},
		{"", StatusSkipped, "⊘"},
	}
	for _, tt := range tests {
		got := StatusForKind(tt.kind)
		testutil.AssertEqual(t, got, tt.want, tt.kind)
		testutil.AssertEqual(t, got.Symbol(), tt.symbol, tt.kind+" symbol")
	}
}

func TestParseUIMode(t *testing.T) {
	testutil.AssertEqual(t, ParseUIMode("raw"), UIModeRaw, "raw")
	testutil.AssertEqual(t, ParseUIMode("quiet"), UIModeQuiet, "quiet")
	testutil.AssertEqual(t, ParseUIMode("fancy"), UIModeCompact, "fallback")
}

func TestSummaryRows(t *testing.T) {
	rows := summaryRows(RunStats{Processed: 7, Ambiguous: 2, MissingMeta: 1})
	testutil.AssertStrings(t, rows[0], []string{"Bucket", "Count"}, "header")
	testutil.AssertStrings(t, rows[1], []string{"Processed", "7"}, "processed")
	testutil.AssertStrings(t, rows[5], []string{"Unresolved packages", "2"}, "unresolved")
	testutil.AssertStrings(t, rows[8], []string{"Missing meta.yaml", "1"}, "missing")
}

func TestPTermPresenter_Lifecycle(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	p := New(UIModeCompact)
	p.Start(RunInfo{Chunk: 0, TotalChunks: 1, Recipes: 2, Total: 2, End: 2})
	p.RecipeDone(RecipeUpdate{Name: "a", Status: StatusSuccess, Done: 1, Total: 2})
	p.RecipeDone(RecipeUpdate{Name: "b", Status: StatusError, Done: 2, Total: 2})
	p.Finish(RunStats{Processed: 2, Executable: 1, Errors: 1, Files: []string{"x.yml"}})
	testutil.AssertNoError(t, p.Close(), "close")

	pp := p.(*PTermPresenter)
	testutil.AssertEqual(t, pp.counts[StatusSuccess], 1, "successes")
	testutil.AssertEqual(t, pp.counts[StatusError], 1, "errors")
}

func TestFormatDuration(t *testing.T) {
	testutil.AssertEqual(t, formatDuration(250*time.Millisecond), "250ms", "ms")
	testutil.AssertEqual(t, formatDuration(2500*time.Millisecond), "2.5s", "seconds")
	testutil.AssertEqual(t, formatDuration(125*time.Second), "2m5s", "minutes")
}
