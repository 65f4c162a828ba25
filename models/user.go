package models

import "time"

type User struct {
	Id        string
	Name      string
	Email     string
	Age       int
	Gender    string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
