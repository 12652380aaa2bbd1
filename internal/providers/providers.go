package providers

import (
	"context"
	"encoding/json"
	"io"

	"course-fetch/internal/domain"
)

// LessonSource is what the fetcher needs from a course-hosting API.
type LessonSource interface {
	Name() string

	// ListLessons returns all lessons of a course, across pages.
	ListLessons(ctx context.Context, courseID string) ([]domain.Lesson, error)

	// LessonDetail returns the full metadata record of one lesson, verbatim.
	LessonDetail(ctx context.Context, lessonID string) (json.RawMessage, error)

	// ListContentItems returns the content items of one lesson, across pages.
	ListContentItems(ctx context.Context, lessonID string) ([]domain.ContentItem, error)

	// Download opens a content blob for streaming. The second return value is
	// the Content-Type reported by the server (may be empty).
	Download(ctx context.Context, url string) (io.ReadCloser, string, error)
}
