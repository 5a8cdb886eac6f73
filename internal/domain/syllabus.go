package domain

import "time"

// SyllabusDocument holds topic names already extracted from an uploaded
// syllabus. Extraction itself happens upstream.
type SyllabusDocument struct {
	ID        string    `json:"documentId"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Topics    []string  `json:"topics"`
	CreatedAt time.Time `json:"createdAt"`
}
