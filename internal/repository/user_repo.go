package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/aa_questions/internal/model"
)

const (
	userByIDSQL = `
		SELECT
			*
		FROM
			users
		WHERE
			users.id = ?`

	userByNameSQL = `
		SELECT
			*
		FROM
			users
		WHERE
			users.fname = ? AND users.lname = ?`
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	return queryOne[model.User](r.db, userByIDSQL, id)
}

// GetByName 按姓名查找，重名时返回第一条
func (r *UserRepository) GetByName(fname, lname string) (*model.User, error) {
	return queryOne[model.User](r.db, userByNameSQL, fname, lname)
}
