package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/utils"
)

type DBCompany struct {
	Id            string      `db:"id"`
	Name          string      `db:"name"`
	Industry      string      `db:"industry"`
	Country       string      `db:"country"`
	Website       null.String `db:"website"`
	EmployeeCount int         `db:"employee_count"`
	IsActive      bool        `db:"is_active"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

const TABLE_COMPANIES = "companies"

var SelectCompanyColumn = utils.ColumnList[DBCompany]()

func AdaptCompany(db DBCompany) (models.Company, error) {
	return models.Company{
		Id:            db.Id,
		Name:          db.Name,
		Industry:      db.Industry,
		Country:       db.Country,
		Website:       db.Website,
		EmployeeCount: db.EmployeeCount,
		IsActive:      db.IsActive,
		CreatedAt:     db.CreatedAt,
		UpdatedAt:     db.UpdatedAt,
	}, nil
}
