// Package fetch walks courses, lessons and content items and writes
// everything to the local output tree. Control flow is a plain nested
// iteration; an error in one unit of work is logged and the run moves on
// to the next unit.
package fetch

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"course-fetch/internal/domain"
	"course-fetch/internal/providers"
	"course-fetch/internal/store"
)

type Fetcher struct {
	Source providers.LessonSource
	Store  *store.Store
}

func New(source providers.LessonSource, st *store.Store) *Fetcher {
	return &Fetcher{Source: source, Store: st}
}

// Run processes every course ID sequentially and writes a manifest at the
// end. It is best-effort: per-course, per-lesson and per-item failures are
// recorded and logged, never fatal. The returned error covers only the
// manifest write itself.
func (f *Fetcher) Run(ctx context.Context, courseIDs []string) (domain.Manifest, error) {
	m := domain.Manifest{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}

	for _, courseID := range courseIDs {
		m.Courses = append(m.Courses, f.fetchCourse(ctx, courseID))
	}

	m.FinishedAt = time.Now().UTC()

	if err := f.Store.WriteManifest(m); err != nil {
		return m, err
	}
	return m, nil
}

func (f *Fetcher) fetchCourse(ctx context.Context, courseID string) domain.CourseResult {
	res := domain.CourseResult{CourseID: courseID}

	// the course dir exists even when the course turns out to be empty
	if _, err := f.Store.CourseDir(courseID); err != nil {
		glog.Errorf("course %s: %v", courseID, err)
		res.Error = err.Error()
		return res
	}

	lessons, err := f.Source.ListLessons(ctx, courseID)
	if err != nil {
		glog.Errorf("course %s: list lessons: %v", courseID, err)
		res.Error = err.Error()
		return res
	}

	glog.Infof("course %s: %d lessons", courseID, len(lessons))

	for _, lesson := range lessons {
		res.Lessons = append(res.Lessons, f.fetchLesson(ctx, lesson))
	}
	return res
}

func (f *Fetcher) fetchLesson(ctx context.Context, lesson domain.Lesson) domain.LessonResult {
	res := domain.LessonResult{
		LessonID: lesson.ID,
		Title:    lesson.Title,
	}

	glog.Infof("lesson %s: %s", lesson.ID, lesson.Title)

	detail, err := f.Source.LessonDetail(ctx, lesson.ID)
	if err != nil {
		glog.Errorf("lesson %s: detail: %v", lesson.ID, err)
		res.Error = err.Error()
		return res
	}

	dir, err := f.Store.LessonDir(lesson.CourseID, lesson)
	if err != nil {
		glog.Errorf("lesson %s: %v", lesson.ID, err)
		res.Error = err.Error()
		return res
	}
	res.Dir = dir

	if err := f.Store.WriteLessonMetadata(dir, detail); err != nil {
		glog.Errorf("lesson %s: %v", lesson.ID, err)
		res.Error = err.Error()
		return res
	}

	items, err := f.Source.ListContentItems(ctx, lesson.ID)
	if err != nil {
		// metadata is already on disk; treat the lesson as having no items
		glog.Warningf("lesson %s: content items: %v", lesson.ID, err)
		return res
	}
	res.ItemCount = len(items)

	if err := f.Store.WriteContentItemList(dir, items); err != nil {
		glog.Errorf("lesson %s: %v", lesson.ID, err)
		res.Error = err.Error()
		return res
	}

	// direct downloads, one file per item that has a source
	for _, item := range items {
		if item.SourceURL == "" {
			continue
		}
		if f.downloadTo(ctx, dir, item.SourceURL, func(ct string) string {
			return contentFilename(item.Index, item.SourceURL, ct)
		}) {
			res.Downloaded++
		} else {
			res.Failed++
		}
	}

	// assets referenced from embedded HTML
	assetCounter := 0
	for _, item := range items {
		for _, assetURL := range ExtractAssetURLs(item.ContentHTML) {
			name := assetFilename(assetCounter, assetURL)
			assetCounter++
			if f.downloadTo(ctx, dir, assetURL, func(string) string { return name }) {
				res.Downloaded++
			} else {
				res.Failed++
			}
		}
	}

	return res
}

// downloadTo fetches one blob and writes it under dir. The filename may
// depend on the response Content-Type, hence the callback. Returns whether
// the file was fully written.
func (f *Fetcher) downloadTo(ctx context.Context, dir, rawURL string, filename func(contentType string) string) bool {
	rc, contentType, err := f.Source.Download(ctx, rawURL)
	if err != nil {
		glog.Errorf("download %s: %v", rawURL, err)
		return false
	}
	defer rc.Close()

	name := filename(contentType)
	if _, err := f.Store.WriteBlob(dir, name, rc); err != nil {
		glog.Errorf("download %s: %v", rawURL, err)
		return false
	}

	glog.Infof("wrote %s", name)
	return true
}
