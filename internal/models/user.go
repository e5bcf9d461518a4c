package models

// User is part of the schema, but no endpoint reads or writes it.
type User struct {
	Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}
