package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/aa_questions/internal/model"
)

const (
	questionByIDSQL = `
		SELECT
			*
		FROM
			questions
		WHERE
			questions.id = ?`

	questionsByAuthorSQL = `
		SELECT
			*
		FROM
			questions
		WHERE
			questions.author_id = ?`
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) GetByID(id int64) (*model.Question, error) {
	return queryOne[model.Question](r.db, questionByIDSQL, id)
}

// ListByAuthorID 获取用户发布的问题
func (r *QuestionRepository) ListByAuthorID(authorID int64) ([]*model.Question, error) {
	return queryAll[model.Question](r.db, questionsByAuthorSQL, authorID)
}
