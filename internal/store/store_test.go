package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"course-fetch/internal/domain"
)

func TestCourseDir(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	dir, err := s.CourseDir("ABC123")
	if err != nil {
		t.Fatalf("CourseDir: %v", err)
	}

	if filepath.Base(dir) != "course_ABC123" {
		t.Errorf("expected course_ABC123, got %s", filepath.Base(dir))
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("expected directory to exist: %v", err)
	}

	// creating again must not fail
	if _, err := s.CourseDir("ABC123"); err != nil {
		t.Errorf("second CourseDir: %v", err)
	}
}

func TestLessonDir(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	dir, err := s.LessonDir("ABC123", domain.Lesson{ID: "L1", Title: "Intro"})
	if err != nil {
		t.Fatalf("LessonDir: %v", err)
	}

	want := filepath.Join("course_ABC123", "Intro_L1")
	if !strings.HasSuffix(dir, want) {
		t.Errorf("expected dir ending in %s, got %s", want, dir)
	}
}

func TestWriteLessonMetadata(t *testing.T) {
	s, _ := New(t.TempDir())
	dir, _ := s.LessonDir("C", domain.Lesson{ID: "L1", Title: "Intro"})

	raw := json.RawMessage(`{"id":"L1","title":"Intro"}`)
	if err := s.WriteLessonMetadata(dir, raw); err != nil {
		t.Fatalf("WriteLessonMetadata: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		t.Fatalf("read metadata: %v", err)
	}

	// indented output, same content
	if !strings.Contains(string(data), "\n  \"title\": \"Intro\"") {
		t.Errorf("expected indented metadata, got %s", data)
	}

	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("metadata not valid JSON: %v", err)
	}
	if got["id"] != "L1" {
		t.Errorf("expected id L1, got %q", got["id"])
	}
}

func TestWriteContentItemList(t *testing.T) {
	s, _ := New(t.TempDir())
	dir, _ := s.LessonDir("C", domain.Lesson{ID: "L1", Title: "Intro"})

	items := []domain.ContentItem{
		{Index: 0, Raw: json.RawMessage(`{"url":"https://cdn.test/a.mp4"}`)},
		{Index: 1, Raw: json.RawMessage(`{"title":"text"}`)},
	}
	if err := s.WriteContentItemList(dir, items); err != nil {
		t.Fatalf("WriteContentItemList: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ContentListFile))
	if err != nil {
		t.Fatalf("read content list: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("content list not valid JSON: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 items, got %d", len(got))
	}
}

func TestWriteContentItemListEmpty(t *testing.T) {
	s, _ := New(t.TempDir())
	dir, _ := s.LessonDir("C", domain.Lesson{ID: "L2", Title: "Advanced"})

	if err := s.WriteContentItemList(dir, nil); err != nil {
		t.Fatalf("WriteContentItemList: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ContentListFile))
	if err != nil {
		t.Fatalf("read content list: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("expected empty array, got %s", data)
	}
}

func TestWriteBlob(t *testing.T) {
	s, _ := New(t.TempDir())
	dir, _ := s.LessonDir("C", domain.Lesson{ID: "L1", Title: "Intro"})

	n, err := s.WriteBlob(dir, "content_0.mp4", strings.NewReader("0123456789"))
	if err != nil {
		t.Fatalf("WriteBlob: %v", err)
	}
	if n != 10 {
		t.Errorf("expected 10 bytes written, got %d", n)
	}

	// rerun overwrites, never appends
	n, err = s.WriteBlob(dir, "content_0.mp4", strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("WriteBlob overwrite: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 bytes on overwrite, got %d", n)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "content_0.mp4"))
	if string(data) != "abc" {
		t.Errorf("expected overwritten content 'abc', got %q", data)
	}
}

func TestWriteAndReadManifest(t *testing.T) {
	root := t.TempDir()
	s, _ := New(root)

	m := domain.Manifest{
		RunID:   "run-1",
		BaseURL: "https://api.test",
		Courses: []domain.CourseResult{
			{CourseID: "ABC123", Lessons: []domain.LessonResult{
				{LessonID: "L1", Title: "Intro", Dir: "course_ABC123/Intro_L1", ItemCount: 1, Downloaded: 1},
			}},
		},
	}
	if err := s.WriteManifest(m); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	got, err := ReadManifest(filepath.Join(root, ManifestFile))
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if got.RunID != "run-1" {
		t.Errorf("expected run id run-1, got %q", got.RunID)
	}
	if got.TotalLessons() != 1 {
		t.Errorf("expected 1 lesson, got %d", got.TotalLessons())
	}
}

func TestReadManifestMissing(t *testing.T) {
	if _, err := ReadManifest(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing manifest, got nil")
	}
}

func TestAtomicWriterNoTempLeftover(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := writeFileAtomic(path, []byte(`{"ok":true}`)); err != nil {
		t.Fatalf("writeFileAtomic: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only out.json, got %v", names)
	}
}

func TestAtomicWriterAbort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	w, err := newAtomicWriter(path)
	if err != nil {
		t.Fatalf("newAtomicWriter: %v", err)
	}
	w.Write([]byte("partial"))
	if err := w.Abort(); err != nil {
		t.Fatalf("Abort: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected target to not exist after abort")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected empty dir after abort, got %d entries", len(entries))
	}
}
