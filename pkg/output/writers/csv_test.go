package writers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a11yaudit/a11yaudit/pkg/finding"
)

func sampleFindings() []finding.Finding {
	return []finding.Finding{
		{
			Type:           finding.Violation,
			Impact:         finding.Critical,
			RuleID:         "image-alt",
			Description:    "Images must have alternate text",
			Help:           "Ensure <img> elements have alternate text",
			HelpURL:        "https://dequeuniversity.com/rules/axe/4.7/image-alt",
			Tags:           []string{"wcag2a", "wcag111"},
			Element:        `<img src="logo.png">`,
			FailureSummary: "Fix any of the following: element has no alt attribute",
		},
		{
			Type:        finding.NeedsReview,
			Impact:      finding.Serious,
			RuleID:      "color-contrast",
			Description: "Elements must have sufficient color contrast",
		},
	}
}

func TestCSVHeaderAlwaysWritten(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cw := NewCSVWriter(&buf, CSVOptions{})
	require.NoError(t, cw.Close())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "empty report still carries the header")
	assert.Equal(t, csvColumns, records[0])
}

func TestCSVRowOrderAndColumns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cw := NewCSVWriter(&buf, CSVOptions{})
	require.NoError(t, cw.WriteAll(sampleFindings()))
	require.NoError(t, cw.Close())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[1]
	assert.Equal(t, "violation", first[0])
	assert.Equal(t, "critical", first[1])
	assert.Equal(t, "Images must have alternate text", first[2])
	assert.Equal(t, "https://dequeuniversity.com/rules/axe/4.7/image-alt", first[4])
	assert.Equal(t, "image-alt", first[5])
	assert.Equal(t, "wcag2a, wcag111", first[6])
	assert.Equal(t, `<img src="logo.png">`, first[7])

	second := records[2]
	assert.Equal(t, "needs-review", second[0])
	assert.Equal(t, "serious", second[1])
	assert.Equal(t, "", second[6], "missing tags render as empty field")
	assert.Equal(t, "", second[8], "missing failure summary renders as empty field")
}

// brokenWriter fails every write, modeling a full or revoked report
// destination.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestCSVHeaderWriteFailureSurfaces(t *testing.T) {
	t.Parallel()

	cw := NewCSVWriter(brokenWriter{}, CSVOptions{})

	err := cw.Write(sampleFindings()[0])
	require.Error(t, err, "row writes must report the failed header")
	assert.Contains(t, err.Error(), "header")

	assert.Error(t, cw.Flush())
	assert.Error(t, cw.Close())
}

func TestCSVExcelBOM(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cw := NewCSVWriter(&buf, CSVOptions{ExcelCompatible: true})
	require.NoError(t, cw.Close())
	assert.True(t, strings.HasPrefix(buf.String(), utf8BOM))
}

func TestCSVFormulaSanitization(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cw := NewCSVWriter(&buf, CSVOptions{SanitizeFormulas: true})
	require.NoError(t, cw.Write(finding.Finding{
		Type:        finding.Violation,
		Impact:      finding.Serious,
		RuleID:      "label",
		Description: "=HYPERLINK(\"http://evil\")",
	}))
	require.NoError(t, cw.Close())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `'=HYPERLINK("http://evil")`, records[1][2])
}

func TestTruncateField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 10, "abcdefghij"},
		{"abcdefghijk", 10, "abcdefg..."},
		{"abcd", 0, "abcd"},
		{"abcd", 2, "ab"},
	}
	for _, tt := range tests {
		if got := truncateField(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncateField(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
