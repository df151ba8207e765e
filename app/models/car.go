package models

import "time"

// Car is one row of the cars catalogue. Views counts how many times the car
// was fetched by id; it starts at zero and only ever grows.
type Car struct {
	ID        uint      `gorm:"primaryKey"              json:"id"`
	Make      string    `gorm:"size:255;not null;index" json:"make"`
	Model     string    `gorm:"size:255;not null"       json:"model"`
	Year      int       `gorm:"not null"                json:"year"`
	Color     string    `gorm:"size:100;not null"       json:"color"`
	Views     int       `gorm:"not null;default:0"      json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Car) TableName() string { return "cars" }

const (
	CarColMake  = "make"
	CarColModel = "model"
	CarColYear  = "year"
	CarColColor = "color"
	CarColViews = "views"
)
