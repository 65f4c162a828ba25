package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/utils"
)

type DBProduct struct {
	Id          string      `db:"id"`
	Name        string      `db:"name"`
	Price       float64     `db:"price"`
	Description null.String `db:"description"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

const TABLE_PRODUCTS = "products"

var SelectProductColumn = utils.ColumnList[DBProduct]()

func AdaptProduct(db DBProduct) (models.Product, error) {
	return models.Product{
		Id:          db.Id,
		Name:        db.Name,
		Price:       db.Price,
		Description: db.Description,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}
