package macro

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tool.mcr")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantName     string
		wantCategory string
	}{
		{
			name: "typical descriptor",
			content: `macroScript PaintTool
category: "Paint"
(
	print "hi"
)`,
			wantName:     "PaintTool",
			wantCategory: "Paint",
		},
		{
			name: "category before name",
			content: `category: "Paint"
macroScript PaintTool`,
			wantName:     "PaintTool",
			wantCategory: "Paint",
		},
		{
			name: "comment lines ignored",
			content: `-- macroScript NotThisOne
-- category: "NotThisEither"
macroScript RealTool
category: "Real"`,
			wantName:     "RealTool",
			wantCategory: "Real",
		},
		{
			name:         "both fields on one line",
			content:      `macroScript OneLiner category: "Compact"`,
			wantName:     "OneLiner",
			wantCategory: "Compact",
		},
		{
			name: "first match wins per field",
			content: `macroScript First
macroScript Second
category: "One"
category: "Two"`,
			wantName:     "First",
			wantCategory: "One",
		},
		{
			name:         "no matching lines",
			content:      "fn helper = (\n\tprint 1\n)\n",
			wantName:     "",
			wantCategory: "",
		},
		{
			name:         "empty file",
			content:      "",
			wantName:     "",
			wantCategory: "",
		},
		{
			name: "marker without second token does not claim the field",
			content: `macroScript
macroScript LateTool
category: no quotes here
category: "Late"`,
			wantName:     "LateTool",
			wantCategory: "Late",
		},
		{
			name: "indented lines are stripped before the comment check",
			content: `    -- macroScript Hidden
	macroScript Indented
	category: "Nested"`,
			wantName:     "Indented",
			wantCategory: "Nested",
		},
		{
			name:         "unterminated quote takes the remainder",
			content:      `category: "Open ended`,
			wantName:     "",
			wantCategory: "Open ended",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDescriptor(t, tt.content)
			name, category := Read(path)
			if name != tt.wantName || category != tt.wantCategory {
				t.Errorf("Read() = (%q, %q), want (%q, %q)", name, category, tt.wantName, tt.wantCategory)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	name, category := Read(filepath.Join(t.TempDir(), "nope.mcr"))
	if name != "" || category != "" {
		t.Errorf("Read() = (%q, %q), want empty pair", name, category)
	}
}

func TestReadCustomMarkers(t *testing.T) {
	path := writeDescriptor(t, "toolScript CustomTool\ngroup: \"Custom\"\n")

	name, category := Read(path,
		WithStartMarker("toolScript"),
		WithCategoryMarker("group:"),
	)
	if name != "CustomTool" || category != "Custom" {
		t.Errorf("Read() = (%q, %q), want (CustomTool, Custom)", name, category)
	}
}
