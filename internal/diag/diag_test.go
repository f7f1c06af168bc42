package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleReporter_CountsEveryReport(t *testing.T) {
	r := NewConsoleReporter()
	var buf bytes.Buffer
	r.Out = &buf

	r.Report(UnexpectedToken, "expected ';'", 3)
	r.Report(UndefinedVariable, "undefined variable \"x\"", 7)

	assert.Equal(t, 2, r.Count)
	assert.True(t, r.HasErrors())
}

func TestConsoleReporter_MessageIncludesLineAndKind(t *testing.T) {
	r := NewConsoleReporter()
	var buf bytes.Buffer
	r.Out = &buf

	r.Report(UnexpectedToken, "expected ';'", 3)

	out := buf.String()
	assert.Contains(t, out, "line 3")
	assert.Contains(t, out, "expected ';'")
	assert.Contains(t, out, string(UnexpectedToken))
}

func TestConsoleReporter_OmitsLineWhenZero(t *testing.T) {
	r := NewConsoleReporter()
	var buf bytes.Buffer
	r.Out = &buf

	r.Report(NotCallable, "value is not callable", 0)

	out := buf.String()
	assert.NotContains(t, out, "line 0")
}

func TestConsoleReporter_NoReportsMeansNoErrors(t *testing.T) {
	r := NewConsoleReporter()
	assert.False(t, r.HasErrors())
	assert.Equal(t, 0, r.Count)
}

func TestSprint_FormatsLikeSprintf(t *testing.T) {
	assert.Equal(t, "undefined name \"x\"", Sprint("undefined name %q", "x"))
}
