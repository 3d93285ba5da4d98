package models

type Student struct {
	ID     uint   `gorm:"primaryKey"                   json:"id"`
	RollNo string `gorm:"size:30;uniqueIndex;not null" json:"roll_no"`
	Name   string `gorm:"size:100;not null"            json:"name"`
}
