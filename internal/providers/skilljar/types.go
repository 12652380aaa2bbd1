package skilljar

import (
	"encoding/json"
	"fmt"

	"course-fetch/internal/domain"
)

// IDValue puede venir como:
// - "abc123" (string)
// - 42 (number)
type IDValue string

func (v *IDValue) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*v = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = IDValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = IDValue(n.String())
	return nil
}

// listPage is the pagination envelope Skilljar uses:
// {results: [...], next: <url|null>, count: n}.
// Some endpoints answer with a bare array or a single object instead;
// parsePage normalizes all three shapes.
type listPage struct {
	Results []json.RawMessage `json:"results"`
	Next    string            `json:"next"`
	Count   int               `json:"count"`
}

// parsePage returns the records of one page and whether another page follows.
func parsePage(body []byte) ([]json.RawMessage, bool, error) {
	trimmed := firstNonSpace(body)

	switch trimmed {
	case '[':
		var results []json.RawMessage
		if err := json.Unmarshal(body, &results); err != nil {
			return nil, false, err
		}
		return results, false, nil

	case '{':
		// envelope or single record
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(body, &probe); err != nil {
			return nil, false, err
		}
		if _, ok := probe["results"]; ok {
			var page listPage
			if err := json.Unmarshal(body, &page); err != nil {
				return nil, false, err
			}
			return page.Results, page.Next != "", nil
		}
		return []json.RawMessage{json.RawMessage(body)}, false, nil
	}

	return nil, false, fmt.Errorf("skilljar: unrecognized page shape: %.40s", body)
}

func firstNonSpace(b []byte) byte {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c
	}
	return 0
}

/* -------- raw -> domain mapping -------- */

type lessonRecord struct {
	ID    IDValue `json:"id"`
	Title string  `json:"title"`
}

func lessonFromRaw(courseID string, raw json.RawMessage) (domain.Lesson, error) {
	var rec lessonRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Lesson{}, err
	}
	return domain.Lesson{
		ID:       string(rec.ID),
		Title:    rec.Title,
		CourseID: courseID,
		Raw:      raw,
	}, nil
}

type contentItemRecord struct {
	URL         string `json:"url"`
	FileURL     string `json:"file_url"`
	ContentHTML string `json:"content_html"`
}

func contentItemFromRaw(index int, raw json.RawMessage) domain.ContentItem {
	var rec contentItemRecord
	// a record we cannot decode still counts as an item, just with no source
	_ = json.Unmarshal(raw, &rec)

	src := rec.URL
	if src == "" {
		src = rec.FileURL
	}
	return domain.ContentItem{
		Index:       index,
		SourceURL:   src,
		ContentHTML: rec.ContentHTML,
		Raw:         raw,
	}
}
