package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSegments(t *testing.T) {
	content := "[00:01] Speaker A: привет\n[00:05] Speaker B: как дела?\n"

	segments := ParseSegments(content)
	require.Len(t, segments, 2)

	assert.Equal(t, Segment{Timestamp: "00:01", Speaker: "A", Text: "привет"}, segments[0])
	assert.Equal(t, Segment{Timestamp: "00:05", Speaker: "B", Text: "как дела?"}, segments[1])
}

func TestParseSegmentsMultiline(t *testing.T) {
	content := "[00:01] Speaker A: первая строка\nвторая   строка\n\nтретья\n[00:10] Speaker B: ответ"

	segments := ParseSegments(content)
	require.Len(t, segments, 2)

	assert.Equal(t, "первая строка вторая строка третья", segments[0].Text)
	assert.Equal(t, "ответ", segments[1].Text)
}

func TestParseSegmentsBlockEndsAtBracketedLine(t *testing.T) {
	// A bracketed line that is not a well-formed marker still terminates
	// the preceding block; the malformed line itself is skipped.
	content := "[00:01] Speaker A: текст блока\n[broken line without speaker\n[00:20] Speaker B: дальше"

	segments := ParseSegments(content)
	require.Len(t, segments, 2)

	assert.Equal(t, "текст блока", segments[0].Text)
	assert.Equal(t, "B", segments[1].Speaker)
}

func TestParseSegmentsDropsEmptyText(t *testing.T) {
	content := "[00:01] Speaker A:   \n[00:05] Speaker B: текст"

	segments := ParseSegments(content)
	require.Len(t, segments, 1)
	assert.Equal(t, "B", segments[0].Speaker)
}

func TestParseSegmentsNoMatches(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty input", ""},
		{"plain prose", "просто текст без разметки\nвторая строка"},
		{"lowercase label", "[00:01] Speaker a: не по формату"},
		{"missing brackets", "00:01 Speaker A: без скобок"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ParseSegments(tt.content))
		})
	}
}

func TestParseSegmentsPreservesOrder(t *testing.T) {
	content := "[02:00] Speaker B: второй\n[01:00] Speaker A: первый по файлу"

	segments := ParseSegments(content)
	require.Len(t, segments, 2)

	// Appearance order wins, not timestamp order.
	assert.Equal(t, "B", segments[0].Speaker)
	assert.Equal(t, "A", segments[1].Speaker)
}
