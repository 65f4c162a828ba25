package dbmodels

import (
	"time"

	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/utils"
)

type DBUser struct {
	Id        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Age       int       `db:"age"`
	Gender    string    `db:"gender"`
	IsAdmin   bool      `db:"is_admin"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const TABLE_USERS = "users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		Id:        db.Id,
		Name:      db.Name,
		Email:     db.Email,
		Age:       db.Age,
		Gender:    db.Gender,
		IsAdmin:   db.IsAdmin,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}
