package models

import "time"

// Sneaker is one row of the sneakers catalogue. Rating is bounded to
// [0.0, 5.0]; the bound is enforced in the service layer before any write.
type Sneaker struct {
	ID        uint      `gorm:"primaryKey"              json:"id"`
	Brand     string    `gorm:"size:255;not null;index" json:"brand"`
	Model     string    `gorm:"size:255;not null"       json:"model"`
	Price     int       `gorm:"not null"                json:"price"`
	Rating    float64   `gorm:"not null;default:0"      json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Sneaker) TableName() string { return "sneakers" }

const (
	SneakerColBrand  = "brand"
	SneakerColModel  = "model"
	SneakerColPrice  = "price"
	SneakerColRating = "rating"
)
