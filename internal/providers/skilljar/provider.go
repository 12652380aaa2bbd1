package skilljar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"course-fetch/internal/domain"
)

// Provider adapts the Skilljar client into the providers.LessonSource interface.
type Provider struct {
	C        *Client
	MaxPages int // <=0 means all
}

func (p Provider) Name() string { return "skilljar" }

func (p Provider) ListLessons(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	raws, err := p.C.ListLessonsRaw(ctx, courseID, p.MaxPages)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Lesson, 0, len(raws))
	for i, raw := range raws {
		l, err := lessonFromRaw(courseID, raw)
		if err != nil {
			return out, fmt.Errorf("skilljar: lesson record %d of course %s: %w", i, courseID, err)
		}
		out = append(out, l)
	}
	return out, nil
}

func (p Provider) LessonDetail(ctx context.Context, lessonID string) (json.RawMessage, error) {
	return p.C.LessonDetailRaw(ctx, lessonID)
}

func (p Provider) ListContentItems(ctx context.Context, lessonID string) ([]domain.ContentItem, error) {
	raws, err := p.C.ListContentItemsRaw(ctx, lessonID, p.MaxPages)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ContentItem, 0, len(raws))
	for i, raw := range raws {
		out = append(out, contentItemFromRaw(i, raw))
	}
	return out, nil
}

func (p Provider) Download(ctx context.Context, url string) (io.ReadCloser, string, error) {
	return p.C.Download(ctx, url)
}
