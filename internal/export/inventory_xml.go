package export

import (
	"encoding/xml"
	"io"
	"os"

	"course-fetch/internal/domain"
)

/*
Inventory XML shape:

<Lesson_Inventory run_id="...">
  <Course id="ABC123">
    <Lesson id="L1">
      <title>Intro</title>
      <dir>course_ABC123/Intro_L1</dir>
      <item_count>1</item_count>
      <downloaded>1</downloaded>
      <failed>0</failed>
    </Lesson>
  </Course>
</Lesson_Inventory>
*/

type xmlInventory struct {
	XMLName xml.Name    `xml:"Lesson_Inventory"`
	RunID   string      `xml:"run_id,attr"`
	Courses []xmlCourse `xml:"Course"`
}

type xmlCourse struct {
	ID      string      `xml:"id,attr"`
	Error   string      `xml:"error,omitempty"`
	Lessons []xmlLesson `xml:"Lesson"`
}

type xmlLesson struct {
	ID         string `xml:"id,attr"`
	Title      string `xml:"title,omitempty"`
	Dir        string `xml:"dir,omitempty"`
	ItemCount  int    `xml:"item_count"`
	Downloaded int    `xml:"downloaded"`
	Failed     int    `xml:"failed"`
	Error      string `xml:"error,omitempty"`
}

// WriteInventoryXML writes the lesson inventory of a run manifest as XML.
func WriteInventoryXML(w io.Writer, m domain.Manifest) error {
	doc := xmlInventory{RunID: m.RunID}

	for _, c := range m.Courses {
		xc := xmlCourse{ID: c.CourseID, Error: c.Error}
		for _, l := range c.Lessons {
			xc.Lessons = append(xc.Lessons, xmlLesson{
				ID:         l.LessonID,
				Title:      l.Title,
				Dir:        l.Dir,
				ItemCount:  l.ItemCount,
				Downloaded: l.Downloaded,
				Failed:     l.Failed,
				Error:      l.Error,
			})
		}
		doc.Courses = append(doc.Courses, xc)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteInventoryXMLFile is WriteInventoryXML to a path.
func WriteInventoryXMLFile(path string, m domain.Manifest) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteInventoryXML(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
