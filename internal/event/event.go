package event

import "time"

// Sentinel values used when a detail page is missing a field. The
// announcement always shows something, never a blank line.
const (
	UnknownTitle  = "Ukjent tittel"
	UnknownCourse = "Ukjent bane"
)

// Event is one round from the series listing page.
type Event struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	URL       string    `json:"url"`
}

// Detail is a round enriched with information from its own page.
type Detail struct {
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	URL         string    `json:"url"`
	CourseID    int       `json:"course_id,omitempty"`
	CourseName  string    `json:"course"`
	LayoutName  string    `json:"layout"`
	CourseFull  string    `json:"course_full"`
	Description string    `json:"description"`
}
