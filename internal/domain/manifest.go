package domain

import "time"

// Manifest summarizes one fetch run. It is written to the root of the
// output tree and is the input for the inventory exporters.
type Manifest struct {
	RunID      string         `json:"run_id"`
	BaseURL    string         `json:"base_url"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Courses    []CourseResult `json:"courses"`
}

// CourseResult records what happened for one course ID.
type CourseResult struct {
	CourseID string         `json:"course_id"`
	Error    string         `json:"error,omitempty"`
	Lessons  []LessonResult `json:"lessons"`
}

// LessonResult records what was written for one lesson.
type LessonResult struct {
	LessonID   string `json:"lesson_id"`
	Title      string `json:"title"`
	Dir        string `json:"dir"`
	ItemCount  int    `json:"item_count"`
	Downloaded int    `json:"downloaded"`
	Failed     int    `json:"failed"`
	Error      string `json:"error,omitempty"`
}

// TotalLessons counts lessons across all courses.
func (m Manifest) TotalLessons() int {
	n := 0
	for _, c := range m.Courses {
		n += len(c.Lessons)
	}
	return n
}
