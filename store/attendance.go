package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aiat-sdml/attendance-api/models"
)

// Mark is one student's status within a save batch.
type Mark struct {
	StudentID uint
	Status    string
}

// SessionEntry is one roster row of a session query.
type SessionEntry struct {
	RollNo string `json:"roll_no"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// SaveSession records attendance for one (date, subject) session. The whole
// batch is validated before the first write, in a fixed order: date format,
// then required inputs, then subject existence, then per mark (in sequence)
// status and student existence. Writes are upserts on the
// (date, subject, student) key inside a single transaction, so a batch either
// commits entirely or not at all, and repeating a save never duplicates rows.
func (s *Store) SaveSession(date string, subjectID uint, marks []Mark) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	if subjectID == 0 || len(marks) == 0 {
		return ErrMissingInput
	}
	ok, err := s.subjectExists(subjectID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSubjectNotFound
	}
	for _, m := range marks {
		if !ValidStatus(m.Status) {
			return ErrInvalidStatus
		}
		ok, err := s.studentExists(m.StudentID)
		if err != nil {
			return err
		}
		if !ok {
			return &StudentNotFoundError{ID: m.StudentID}
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, m := range marks {
			rec := models.Attendance{
				Date:      date,
				SubjectID: subjectID,
				StudentID: m.StudentID,
				Status:    m.Status,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "date"},
					{Name: "subject_id"},
					{Name: "student_id"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"status"}),
			}).Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Session returns the full roster with each student's status for the given
// (subject, date), ordered by name. Students without a ledger row read as
// "Absent" — the fill-in happens here, it is never stored. Subject existence
// is deliberately not checked: an unknown subject id yields an all-Absent
// roster, which matches the system's long-standing behavior.
func (s *Store) Session(subjectID uint, date string) ([]SessionEntry, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}
	entries := []SessionEntry{}
	err := s.db.Table("students AS st").
		Select("st.roll_no, st.name, COALESCE(a.status, 'Absent') AS status").
		Joins("LEFT JOIN attendances a ON a.student_id = st.id AND a.subject_id = ? AND a.date = ?", subjectID, date).
		Order("st.name ASC, st.id ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
