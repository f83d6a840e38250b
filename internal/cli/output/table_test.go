package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_Render(t *testing.T) {
	table := &Table{}
	table.SetHeaders("PHASE", "OPS")
	table.AddRow("fill", "1000")
	table.AddRow("delete", "100")

	var buf bytes.Buffer
	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "PHASE") {
		t.Errorf("first line = %q, want header", lines[0])
	}
	if !strings.Contains(lines[1], "fill") || !strings.Contains(lines[1], "1000") {
		t.Errorf("row line = %q, want fill row", lines[1])
	}
}

func TestTable_RenderNoHeaders(t *testing.T) {
	table := &Table{}
	table.SetHeaders("KEY")
	table.AddRow("one")

	var buf bytes.Buffer
	if err := table.RenderWithOptions(&buf, true); err != nil {
		t.Fatalf("RenderWithOptions() error = %v", err)
	}

	if strings.Contains(buf.String(), "KEY") {
		t.Errorf("output %q contains suppressed header", buf.String())
	}
}

func TestTable_RenderEmpty(t *testing.T) {
	table := &Table{}

	var buf bytes.Buffer
	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty table rendered %q, want nothing", buf.String())
	}
}
