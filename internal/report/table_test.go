package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"When", "Words", "Max"}
	rows := [][]string{
		{"2026-08-30 10:00", "1204", "16"},
		{"2026-08-30 11:15", "87", "9"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "When             Words Max" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "2026-08-30 10:00  1204  16" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "2026-08-30 11:15    87   9" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil for empty table, got %v", lines)
	}
}
