package models

import (
	"time"

	"github.com/guregu/null/v5"
)

type Company struct {
	Id            string
	Name          string
	Industry      string
	Country       string
	Website       null.String
	EmployeeCount int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
