package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/aa_questions/internal/model"
)

const (
	followByIDSQL = `
		SELECT
			*
		FROM
			question_follows
		WHERE
			question_follows.id = ?`

	followersForQuestionSQL = `
		SELECT
			users.id, users.fname, users.lname
		FROM
			users
		JOIN question_follows
			ON users.id = question_follows.user_id
		WHERE
			question_follows.question_id = ?`

	followedQuestionsForUserSQL = `
		SELECT
			questions.id, questions.title, questions.body, questions.author_id
		FROM
			questions
		JOIN question_follows
			ON question_follows.question_id = questions.id
		WHERE
			question_follows.user_id = ?`

	// 关注数降序，相同时按 id 升序
	mostFollowedQuestionsSQL = `
		SELECT
			questions.id, questions.title, questions.body, questions.author_id
		FROM
			questions
		JOIN question_follows
			ON question_follows.question_id = questions.id
		GROUP BY
			questions.id, questions.title, questions.body, questions.author_id
		ORDER BY
			COUNT(*) DESC, questions.id ASC
		LIMIT ?`
)

type QuestionFollowRepository struct {
	db *gorm.DB
}

func NewQuestionFollowRepository(db *gorm.DB) *QuestionFollowRepository {
	return &QuestionFollowRepository{db: db}
}

func (r *QuestionFollowRepository) GetByID(id int64) (*model.QuestionFollow, error) {
	return queryOne[model.QuestionFollow](r.db, followByIDSQL, id)
}

// FollowersForQuestionID 获取关注该问题的用户
func (r *QuestionFollowRepository) FollowersForQuestionID(questionID int64) ([]*model.User, error) {
	return queryAll[model.User](r.db, followersForQuestionSQL, questionID)
}

// FollowedQuestionsForUserID 获取用户关注的问题
func (r *QuestionFollowRepository) FollowedQuestionsForUserID(userID int64) ([]*model.Question, error) {
	return queryAll[model.Question](r.db, followedQuestionsForUserSQL, userID)
}

// MostFollowedQuestions 关注数最多的前 n 个问题，没有关注者的问题不参与排名
func (r *QuestionFollowRepository) MostFollowedQuestions(n int) ([]*model.Question, error) {
	if n <= 0 {
		return []*model.Question{}, nil
	}
	return queryAll[model.Question](r.db, mostFollowedQuestionsSQL, n)
}
