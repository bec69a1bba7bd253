package stats

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/spr/internal/model"
)

func TestSessionMetrics(t *testing.T) {
	wpm, completion := SessionMetrics(300, 600, 60000)
	if math.Abs(wpm-300) > 1e-9 {
		t.Fatalf("expected 300 wpm, got %f", wpm)
	}
	if math.Abs(completion-0.5) > 1e-9 {
		t.Fatalf("expected 0.5 completion, got %f", completion)
	}

	wpm, completion = SessionMetrics(10, 0, 0)
	if wpm != 0 || completion != 0 {
		t.Fatalf("expected zero metrics, got %f %f", wpm, completion)
	}

	_, completion = SessionMetrics(12, 10, 1000)
	if completion != 1 {
		t.Fatalf("expected completion capped at 1, got %f", completion)
	}
}

func TestSparklineFlatAndRange(t *testing.T) {
	if got := Sparkline([]float64{5, 5, 5}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	got := Sparkline([]float64{0, 10})
	if got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int64]string{
		0:         "0:00",
		61_400:    "1:01",
		3_725_000: "1:02:05",
	}
	for ms, want := range cases {
		if got := formatDuration(ms); got != want {
			t.Fatalf("formatDuration(%d) = %q, want %q", ms, got, want)
		}
	}
}

func TestWriteHistoryAlignsColumns(t *testing.T) {
	sessions := []model.SessionAggregate{
		{SessionID: 1, StartedAt: time.Now(), Source: "stdin", WPM: 300, TotalWords: 100, WordsShown: 50, DurationMs: 30000},
		{SessionID: 2, StartedAt: time.Now(), Source: "notes.md", WPM: 450, TotalWords: 10, WordsShown: 10, Finished: true, DurationMs: 2000},
	}
	var buf bytes.Buffer
	if err := WriteHistory(&buf, sessions); err != nil {
		t.Fatalf("write history: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Date") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "100.0") || !strings.Contains(lines[1], "50%") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.Contains(lines[2], "100% ✓") || !strings.Contains(lines[2], "300.0") {
		t.Fatalf("unexpected second row %q", lines[2])
	}
}

func TestWriteHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHistory(&buf, nil); err != nil {
		t.Fatalf("write history: %v", err)
	}
	if buf.String() != "No sessions found.\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestTruncateMarksCut(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncate("a-very-long-source-name", 8); got != "a-very-…" {
		t.Fatalf("unexpected %q", got)
	}
}

type fakeLister struct {
	sessions []model.SessionAggregate
	err      error
	got      *model.HistoryConfig
}

func (f fakeLister) ListSessions(_ context.Context, cfg model.HistoryConfig) ([]model.SessionAggregate, error) {
	if f.got != nil {
		*f.got = cfg
	}
	return f.sessions, f.err
}

func TestBuildReportLeavesFilteringToLister(t *testing.T) {
	var got model.HistoryConfig
	lister := fakeLister{
		sessions: []model.SessionAggregate{{SessionID: 1}, {SessionID: 2}, {SessionID: 3}},
		got:      &got,
	}
	report, err := BuildReport(context.Background(), lister, model.HistoryConfig{Last: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if got.Last != 2 {
		t.Fatalf("expected Last to reach the lister, got %+v", got)
	}
	if len(report.Sessions) != 3 || report.Sessions[0].SessionID != 1 {
		t.Fatalf("expected sessions unchanged, got %+v", report.Sessions)
	}
}

func TestBuildReportPropagatesError(t *testing.T) {
	want := errors.New("boom")
	_, err := BuildReport(context.Background(), fakeLister{err: want}, model.HistoryConfig{})
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestReportRenderIncludesSummaryAndTable(t *testing.T) {
	report := Report{Sessions: []model.SessionAggregate{
		{SessionID: 1, StartedAt: time.Now(), Source: "a.txt", WPM: 300, TotalWords: 10, WordsShown: 10, Finished: true, DurationMs: 2000},
	}}
	var buf bytes.Buffer
	if err := report.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Summary", "Sessions: 1 (1 finished)", "Words read: 10", "Effective WPM: 300.0", "a.txt"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
