package models

// One row per (date, subject, student); a missing row reads as "Absent".
type Attendance struct {
	ID        uint   `gorm:"primaryKey"                                        json:"id"`
	Date      string `gorm:"size:10;not null;uniqueIndex:idx_attendance_key"   json:"date"` // dd-mm-yyyy
	SubjectID uint   `gorm:"not null;uniqueIndex:idx_attendance_key"           json:"subject_id"`
	StudentID uint   `gorm:"not null;uniqueIndex:idx_attendance_key"           json:"student_id"`
	Status    string `gorm:"size:10;not null"                                  json:"status"` // Present|Absent

	Subject Subject `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Student Student `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
