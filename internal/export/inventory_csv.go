package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"course-fetch/internal/domain"
)

// One row per lesson attempted in a run; failed courses appear as a single
// row with an empty lesson id. Keep header order EXACT, downstream sheets
// depend on it.
var inventoryHeader = []string{
	"RUN_ID",
	"COURSE_ID",
	"LESSON_ID",
	"LESSON_TITLE",
	"DIR",
	"ITEM_COUNT",
	"DOWNLOADED",
	"FAILED",
	"ERROR",
}

// WriteInventoryCSV writes the lesson inventory of a run manifest.
func WriteInventoryCSV(w io.Writer, m domain.Manifest) error {
	cw := csv.NewWriter(w)
	// match typical spreadsheet templates
	cw.UseCRLF = true

	if err := cw.Write(inventoryHeader); err != nil {
		return err
	}

	for _, c := range m.Courses {
		if c.Error != "" {
			row := []string{m.RunID, c.CourseID, "", "", "", "", "", "", c.Error}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		for _, l := range c.Lessons {
			row := []string{
				m.RunID,
				c.CourseID,
				l.LessonID,
				l.Title,
				l.Dir,
				strconv.Itoa(l.ItemCount),
				strconv.Itoa(l.Downloaded),
				strconv.Itoa(l.Failed),
				l.Error,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteInventoryCSVFile is WriteInventoryCSV to a path.
func WriteInventoryCSVFile(path string, m domain.Manifest) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteInventoryCSV(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
