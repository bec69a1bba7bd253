// Package stats contains reading history calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/spr/internal/model"
)

const sparkChars = " .:-=+*#%@"

// SessionMetrics computes the effective reading speed and completion ratio
// for a session. Effective WPM counts words actually shown over wall time,
// so pauses and seeks pull it away from the configured rate.
func SessionMetrics(wordsShown, totalWords int, durationMs int64) (effectiveWPM, completion float64) {
	if totalWords > 0 {
		completion = float64(wordsShown) / float64(totalWords)
		if completion > 1 {
			completion = 1
		}
	}
	if durationMs <= 0 {
		return 0, completion
	}
	minutes := float64(durationMs) / 60000.0
	effectiveWPM = float64(wordsShown) / minutes
	return effectiveWPM, completion
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints aggregate totals for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalWords int
	var totalMs int64
	finished := 0
	speeds := make([]float64, len(sessions))
	for i, s := range sessions {
		speeds[i], _ = SessionMetrics(s.WordsShown, s.TotalWords, s.DurationMs)
		totalWords += s.WordsShown
		totalMs += s.DurationMs
		if s.Finished {
			finished++
		}
	}
	overall, _ := SessionMetrics(totalWords, 0, totalMs)
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d (%d finished)", len(sessions), finished),
		fmt.Sprintf("Words read: %d", totalWords),
		fmt.Sprintf("Time reading: %s", formatDuration(totalMs)),
		fmt.Sprintf("Effective WPM: %.1f", overall),
		fmt.Sprintf("Trend: %s", Sparkline(speeds)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteHistory prints one row per session, oldest first.
func WriteHistory(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	headers := []string{"Date", "Source", "WPM", "Effective", "Progress", "Duration"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		effective, completion := SessionMetrics(s.WordsShown, s.TotalWords, s.DurationMs)
		progress := fmt.Sprintf("%.0f%%", completion*100)
		if s.Finished {
			progress += " ✓"
		}
		rows = append(rows, []string{
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			truncate(s.Source, 32),
			fmt.Sprintf("%d", s.WPM),
			fmt.Sprintf("%.1f", effective),
			progress,
			formatDuration(s.DurationMs),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	s := int(d%time.Minute) / int(time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
