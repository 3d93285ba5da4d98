package store

import (
	"sort"
	"strings"

	"github.com/aiat-sdml/attendance-api/models"
)

// ReportRow is one line of a student's attendance timeline.
type ReportRow struct {
	Date    string `json:"date"`
	Subject string `json:"subject"`
	Status  string `json:"status"`
}

// StudentReport is the result of a history query. Student is nil when the
// search matched nobody; that is a normal outcome, not an error.
type StudentReport struct {
	Student *models.Student `json:"student"`
	Rows    []ReportRow     `json:"rows"`
}

// StudentHistory resolves a free-text query to one student and returns their
// full attendance timeline. The query matches as a case-sensitive substring
// of roll_no or name; the first match in name order wins. Matching runs in Go
// rather than SQL LIKE because sqlite's LIKE is case-insensitive for ASCII
// while postgres' is not, and both drivers must behave identically.
func (s *Store) StudentHistory(query string) (*StudentReport, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ErrMissingQuery
	}

	students, err := s.Students()
	if err != nil {
		return nil, err
	}
	var match *models.Student
	for i := range students {
		if strings.Contains(students[i].RollNo, q) || strings.Contains(students[i].Name, q) {
			match = &students[i]
			break
		}
	}
	if match == nil {
		return &StudentReport{Rows: []ReportRow{}}, nil
	}

	rows := []ReportRow{}
	err = s.db.Table("attendances AS a").
		Select("a.date, s.name AS subject, a.status").
		Joins("JOIN subjects s ON s.id = a.subject_id").
		Where("a.student_id = ?", match.ID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Dates are dd-mm-yyyy text; lexical order is wrong ("09-12-2024" would
	// sort after "01-02-2025"). Sort by parsed calendar date, then subject.
	sort.SliceStable(rows, func(i, j int) bool {
		di, _ := ParseDate(rows[i].Date)
		dj, _ := ParseDate(rows[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return rows[i].Subject < rows[j].Subject
	})

	return &StudentReport{Student: match, Rows: rows}, nil
}
