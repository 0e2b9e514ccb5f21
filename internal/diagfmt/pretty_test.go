package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"jsgreen/internal/diag"
	"jsgreen/internal/source"
)

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.js", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 8, End: 28}, "Unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.js:1:9"},
		{"Relative path", PathModeRelative, "src/test.js:1:9"},
		{"Basename only", PathModeBasename, "test.js:1:9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode, BaseDir: "/home/user/project"})
			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR LEX1002: Unterminated string literal") {
				t.Errorf("Expected header line, got:\n%s", output)
			}
		})
	}
}

func TestPathModeAuto(t *testing.T) {
	tests := []struct{ path, want string }{
		{"test.js", "test.js"},
		{"/very/long/absolute/path/to/some/nested/directory/file.js", "file.js"},
	}
	for _, tt := range tests {
		if got := formatPath(tt.path, PathModeAuto, ""); got != tt.want {
			t.Errorf("formatPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestPrettyUnderline(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.js", []byte("a;\n\tfoo @ bar\nz;\n"))
	bag := diag.NewBag(4)
	d := diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: 3, End: 6}, "bad")
	d = d.WithNote(source.Span{File: fileID, Start: 14, End: 15}, "see here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, ShowNotes: true})
	want := strings.Join([]string{
		"t.js:2:1: WARNING LEX1001: bad",
		"1 | a;",
		"2 |  foo @ bar",
		"  | ^~~",
		"3 | z;",
		"  note: t.js:3:1: see here",
		"3 | z;",
		"  | ^",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.js", []byte("x\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevError, diag.LexUnknownChar, source.Span{File: fileID, Start: 0, End: 1}, "bad"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output has escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("colored output has no escapes: %q", colored.String())
	}
}

func TestParsePathMode(t *testing.T) {
	for in, want := range map[string]PathMode{"": PathModeAuto, "abs": PathModeAbsolute, "Relative": PathModeRelative, "basename": PathModeBasename} {
		got, err := ParsePathMode(in)
		if err != nil || got != want {
			t.Fatalf("ParsePathMode(%q) = %v, %v", in, got, err)
		}
		if back, _ := ParsePathMode(got.String()); back != got {
			t.Fatalf("String of %v does not parse back", got)
		}
	}
	if _, err := ParsePathMode("full"); err == nil {
		t.Fatal("expected an error")
	}
}
