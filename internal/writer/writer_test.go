package writer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWrite(t *testing.T) {
	root := t.TempDir()
	w := New(root, FormatText)

	out, err := w.Write(filepath.Join("projectA", "meeting.txt"), "S")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := filepath.Join(root, "projectA", "meeting_summary.txt")
	if out != want {
		t.Errorf("path = %q, want %q", out, want)
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "S" {
		t.Errorf("content = %q, want %q", data, "S")
	}
}

func TestWriteTopLevelFile(t *testing.T) {
	root := t.TempDir()
	w := New(root, FormatText)

	out, err := w.Write("meeting.txt", "summary")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if out != filepath.Join(root, "meeting_summary.txt") {
		t.Errorf("unexpected path %q", out)
	}
}

func TestWriteOverwrites(t *testing.T) {
	root := t.TempDir()
	w := New(root, FormatText)

	if _, err := w.Write("a.txt", "first"); err != nil {
		t.Fatal(err)
	}
	out, err := w.Write("a.txt", "second")
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
}

func TestWriteDocx(t *testing.T) {
	root := t.TempDir()
	w := New(root, FormatDocx)

	out, err := w.Write(filepath.Join("projectA", "meeting.txt"), "# Heading\n\n- **point** one\n")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := filepath.Join(root, "projectA", "meeting_summary.docx")
	if out != want {
		t.Errorf("path = %q, want %q", out, want)
	}

	info, err := os.Stat(want)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx output is empty")
	}
}

func TestWriteUnwritableRoot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	if err := os.Chmod(root, 0555); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(root, 0755)

	w := New(root, FormatText)
	if _, err := w.Write(filepath.Join("projectA", "meeting.txt"), "S"); err == nil {
		t.Error("Write() should fail when the output root is not writable")
	}
}
