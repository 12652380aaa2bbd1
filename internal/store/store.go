// Package store lays out the local output tree:
//
//	<root>/manifest.json
//	<root>/course_<ID>/<Safe_Title>_<LESSON_ID>/lesson_metadata.json
//	                                           /content_items.json
//	                                           /content_<N>.<ext>
//	                                           /asset_<K>_<name>
//
// Reruns overwrite in place; nothing is read back or merged.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"course-fetch/internal/domain"
)

const (
	MetadataFile    = "lesson_metadata.json"
	ContentListFile = "content_items.json"
	ManifestFile    = "manifest.json"
)

type Store struct {
	Root string
}

// New creates the output root if needed.
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("store: create output root %s: %w", root, err)
	}
	return &Store{Root: root}, nil
}

// CourseDir creates (if needed) and returns the directory for a course.
func (s *Store) CourseDir(courseID string) (string, error) {
	dir := filepath.Join(s.Root, "course_"+courseID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("store: create course dir: %w", err)
	}
	return dir, nil
}

// LessonDir creates (if needed) and returns the directory for a lesson,
// below its course directory.
func (s *Store) LessonDir(courseID string, lesson domain.Lesson) (string, error) {
	dir := filepath.Join(s.Root, "course_"+courseID, lesson.DirName())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("store: create lesson dir: %w", err)
	}
	return dir, nil
}

// WriteLessonMetadata writes the raw lesson record, reindented, as
// lesson_metadata.json inside lessonDir.
func (s *Store) WriteLessonMetadata(lessonDir string, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("store: indent lesson metadata: %w", err)
	}
	return writeFileAtomic(filepath.Join(lessonDir, MetadataFile), buf.Bytes())
}

// WriteContentItemList writes the raw content item records as a JSON array
// in content_items.json inside lessonDir.
func (s *Store) WriteContentItemList(lessonDir string, items []domain.ContentItem) error {
	raws := make([]json.RawMessage, 0, len(items))
	for _, it := range items {
		raws = append(raws, it.Raw)
	}

	compact, err := json.Marshal(raws)
	if err != nil {
		return fmt.Errorf("store: marshal content items: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return fmt.Errorf("store: indent content items: %w", err)
	}
	return writeFileAtomic(filepath.Join(lessonDir, ContentListFile), buf.Bytes())
}

// WriteBlob streams r into lessonDir/filename, truncating any previous copy.
// Blobs are not written atomically: they can be large and a partial file from
// a crashed run is simply overwritten by the next one.
func (s *Store) WriteBlob(lessonDir, filename string, r io.Reader) (int64, error) {
	path := filepath.Join(lessonDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("store: create %s: %w", path, err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("store: write %s: %w", path, err)
	}
	return n, nil
}

// WriteManifest writes the run manifest at the output root.
func (s *Store) WriteManifest(m domain.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal manifest: %w", err)
	}
	return writeFileAtomic(filepath.Join(s.Root, ManifestFile), data)
}

// ReadManifest loads a manifest written by a previous run (exporters use it).
func ReadManifest(path string) (domain.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("store: read manifest: %w", err)
	}
	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return domain.Manifest{}, fmt.Errorf("store: parse manifest: %w", err)
	}
	return m, nil
}

func writeFileAtomic(path string, data []byte) error {
	w, err := newAtomicWriter(path)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Abort()
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	return w.Commit()
}
