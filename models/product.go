package models

import (
	"time"

	"github.com/guregu/null/v5"
)

type Product struct {
	Id          string
	Name        string
	Price       float64
	Description null.String
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
