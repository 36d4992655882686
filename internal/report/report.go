package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/verte-zerg/wordforge/internal/model"
)

// RenderStatistics prints a dictionary statistics block.
func RenderStatistics(w io.Writer, stats model.GenerationStats) error {
	if _, err := fmt.Fprintln(w, "Dictionary Statistics"); err != nil {
		return err
	}
	lines := []struct {
		label string
		value string
	}{
		{"Total words", fmt.Sprintf("%d", stats.TotalWords)},
		{"Unique words", fmt.Sprintf("%d", stats.UniqueWords)},
		{"Min length", fmt.Sprintf("%d", stats.MinLength)},
		{"Max length", fmt.Sprintf("%d", stats.MaxLength)},
		{"Average length", fmt.Sprintf("%.2f", stats.AvgLength)},
		{"Base words", fmt.Sprintf("%d", stats.BaseWords)},
		{"Date insertions", fmt.Sprintf("%d", stats.DatePatterns)},
		{"Number insertions", fmt.Sprintf("%d", stats.Numbers)},
		{"Username entries", fmt.Sprintf("%d", stats.Usernames)},
		{"Mutation insertions", fmt.Sprintf("%d", stats.Mutations)},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-20s %s\n", line.label+":", line.value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderSample prints the first count candidates in lexicographic
// order as a preview.
func RenderSample(w io.Writer, words []string, count int) error {
	if len(words) == 0 {
		_, err := fmt.Fprintln(w, "No words in dictionary.")
		return err
	}
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	if count > len(sorted) {
		count = len(sorted)
	}
	if _, err := fmt.Fprintf(w, "Sample words (%d of %d):\n", count, len(sorted)); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if _, err := fmt.Fprintf(w, "  %3d. %s\n", i+1, sorted[i]); err != nil {
			return err
		}
	}
	if len(sorted) > count {
		if _, err := fmt.Fprintf(w, "  ... and %d more\n", len(sorted)-count); err != nil {
			return err
		}
	}
	return nil
}

// RenderHistory prints past generation runs as an aligned table. When
// maxWidth > 0 the output-file column is truncated to fit.
func RenderHistory(w io.Writer, runs []model.RunRecord, maxWidth int) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}

	headers := []string{"When", "Seeds", "Words", "Min", "Max", "Avg", "Output"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.EndedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", run.SeedCount),
			fmt.Sprintf("%d", run.TotalWords),
			fmt.Sprintf("%d", run.MinLength),
			fmt.Sprintf("%d", run.MaxLength),
			fmt.Sprintf("%.1f", run.AvgLength),
			run.OutputFile,
		})
	}
	if maxWidth > 0 {
		// Width consumed by all columns but the output path, headers
		// included, plus one separator per column.
		fixed := 0
		for i := range headers[:len(headers)-1] {
			colWidth := displayWidth(headers[i])
			for _, row := range rows {
				if w := displayWidth(row[i]); w > colWidth {
					colWidth = w
				}
			}
			fixed += colWidth + 1
		}
		budget := maxWidth - fixed
		if budget < 8 {
			budget = 8
		}
		for _, row := range rows {
			row[len(row)-1] = truncateCell(row[len(row)-1], budget)
		}
	}

	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func truncateCell(value string, width int) string {
	if displayWidth(value) <= width {
		return value
	}
	runes := []rune(value)
	for len(runes) > 0 && displayWidth(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
