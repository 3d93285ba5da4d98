package database

import (
	"gorm.io/gorm"

	"github.com/aiat-sdml/attendance-api/models"
)

var seedSubjects = []string{
	"Software Engineering", "Mobile Applications", "Data Structure", "Mathematics",
	"Information Security", "Frontend Development", "Basic Indian Language",
	"Information Security lab", "Frontend Development lab", "Mobile Applications lab",
	"Data Structure lab", "Integral Yoga",
}

var seedStudents = []models.Student{
	{RollNo: "AIAT/SDML/01", Name: "Aravindh"},
	{RollNo: "AIAT/SDML/02", Name: "Aswin"},
	{RollNo: "AIAT/SDML/03", Name: "Bavana"},
	{RollNo: "AIAT/SDML/04", Name: "Gokul"},
	{RollNo: "AIAT/SDML/05", Name: "Hariharan"},
	{RollNo: "AIAT/SDML/06", Name: "Meenatchi"},
	{RollNo: "AIAT/SDML/07", Name: "Siva Bharathi"},
	{RollNo: "AIAT/SDML/08", Name: "Visal Stephen Raj"},
}

// Seed inserts the fixed subject list and student roster when the respective
// registry is empty. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.Subject{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		subjects := make([]models.Subject, 0, len(seedSubjects))
		for _, name := range seedSubjects {
			subjects = append(subjects, models.Subject{Name: name})
		}
		if err := db.Create(&subjects).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.Student{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		students := make([]models.Student, len(seedStudents))
		copy(students, seedStudents)
		if err := db.Create(&students).Error; err != nil {
			return err
		}
	}
	return nil
}
