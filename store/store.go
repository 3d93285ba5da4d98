package store

import (
	"gorm.io/gorm"

	"github.com/aiat-sdml/attendance-api/models"
)

// Store is the query/mutation layer over the persisted registries and the
// attendance ledger. Handlers receive a Store instead of reaching for a
// package-global DB handle, so tests can run against their own database.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Subjects returns the subject registry ordered by name.
func (s *Store) Subjects() ([]models.Subject, error) {
	var subjects []models.Subject
	if err := s.db.Order("name ASC, id ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

// Students returns the full roster ordered by name; ties fall back to id,
// which follows insertion order.
func (s *Store) Students() ([]models.Student, error) {
	var students []models.Student
	if err := s.db.Order("name ASC, id ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (s *Store) CreateSubject(name string) (*models.Subject, error) {
	var n int64
	if err := s.db.Model(&models.Subject{}).Where("name = ?", name).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrDuplicateSubject
	}
	subject := models.Subject{Name: name}
	if err := s.db.Create(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *Store) CreateStudent(rollNo, name string) (*models.Student, error) {
	var n int64
	if err := s.db.Model(&models.Student{}).Where("roll_no = ?", rollNo).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrDuplicateRollNo
	}
	student := models.Student{RollNo: rollNo, Name: name}
	if err := s.db.Create(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteSubject removes a subject and its dependent attendance rows. The
// cascade is explicit so the contract holds on any driver regardless of
// foreign-key enforcement.
func (s *Store) DeleteSubject(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Subject{}, id).Error
	})
}

// DeleteStudent removes a student and their dependent attendance rows.
func (s *Store) DeleteStudent(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Student{}, id).Error
	})
}

func (s *Store) subjectExists(id uint) (bool, error) {
	var n int64
	if err := s.db.Model(&models.Subject{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) studentExists(id uint) (bool, error) {
	var n int64
	if err := s.db.Model(&models.Student{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
