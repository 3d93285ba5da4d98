package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aiat-sdml/attendance-api/models"
)

func TestSeed(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Student{}, &models.Subject{}, &models.Attendance{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	// seeding twice must not duplicate the registries
	for i := 0; i < 2; i++ {
		if err := Seed(db); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	var n int64
	if err := db.Model(&models.Subject{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 12 {
		t.Errorf("subjects = %d, want 12", n)
	}
	if err := db.Model(&models.Student{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Errorf("students = %d, want 8", n)
	}

	var s models.Student
	if err := db.Where("roll_no = ?", "AIAT/SDML/01").First(&s).Error; err != nil {
		t.Fatalf("seeded student missing: %v", err)
	}
	if s.Name != "Aravindh" {
		t.Errorf("seeded name = %q, want Aravindh", s.Name)
	}
}
