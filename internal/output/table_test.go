package output

import (
	"strings"
	"testing"
)

func TestTable_Render(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("Name", "Value").WithTitle("Demo")
	tbl.AddRow("alpha", "1")
	tbl.AddRow("a-much-longer-name", "2")

	got := tbl.Render()
	if !strings.Contains(got, "Demo") {
		t.Error("title missing")
	}
	if !strings.Contains(got, "Name") || !strings.Contains(got, "Value") {
		t.Error("headers missing")
	}
	if !strings.Contains(got, "a-much-longer-name") {
		t.Error("row missing")
	}

	// Columns are padded to the widest cell, so "alpha" is followed by
	// enough spaces to align with the longer row.
	lines := strings.Split(got, "\n")
	var alphaLine string
	for _, line := range lines {
		if strings.Contains(line, "alpha") && !strings.Contains(line, "longer") {
			alphaLine = line
		}
	}
	if !strings.Contains(alphaLine, "alpha             ") {
		t.Errorf("short cell not padded: %q", alphaLine)
	}
}

func TestTable_ShortRow(t *testing.T) {
	SetNoColor(true)
	tbl := NewTable("A", "B", "C")
	tbl.AddRow("only-one")
	got := tbl.Render()
	if !strings.Contains(got, "only-one") {
		t.Error("partial row should render")
	}
}

func TestSection(t *testing.T) {
	SetNoColor(true)
	got := Section("Header")
	if !strings.Contains(got, "Header") {
		t.Error("section title missing")
	}
	if !strings.Contains(got, "─") {
		t.Error("section rule missing")
	}
}
