package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/aa_questions/internal/model"
)

const (
	likeByIDSQL = `
		SELECT
			*
		FROM
			question_likes
		WHERE
			question_likes.id = ?`

	likersForQuestionSQL = `
		SELECT
			users.id, users.fname, users.lname
		FROM
			users
		JOIN question_likes
			ON users.id = question_likes.user_id
		WHERE
			question_likes.question_id = ?`

	numLikesForQuestionSQL = `
		SELECT
			COUNT(*)
		FROM
			question_likes
		WHERE
			question_likes.question_id = ?`

	likedQuestionsForUserSQL = `
		SELECT
			questions.id, questions.title, questions.body, questions.author_id
		FROM
			questions
		JOIN question_likes
			ON questions.id = question_likes.question_id
		WHERE
			question_likes.user_id = ?`
)

type QuestionLikeRepository struct {
	db *gorm.DB
}

func NewQuestionLikeRepository(db *gorm.DB) *QuestionLikeRepository {
	return &QuestionLikeRepository{db: db}
}

func (r *QuestionLikeRepository) GetByID(id int64) (*model.QuestionLike, error) {
	return queryOne[model.QuestionLike](r.db, likeByIDSQL, id)
}

// LikersForQuestionID 获取点赞该问题的用户
func (r *QuestionLikeRepository) LikersForQuestionID(questionID int64) ([]*model.User, error) {
	return queryAll[model.User](r.db, likersForQuestionSQL, questionID)
}

// NumLikesForQuestionID 问题的点赞数
func (r *QuestionLikeRepository) NumLikesForQuestionID(questionID int64) (int64, error) {
	var count int64
	err := r.db.Raw(numLikesForQuestionSQL, questionID).Row().Scan(&count)
	return count, err
}

// LikedQuestionsForUserID 获取用户点赞过的问题
func (r *QuestionLikeRepository) LikedQuestionsForUserID(userID int64) ([]*model.Question, error) {
	return queryAll[model.Question](r.db, likedQuestionsForUserSQL, userID)
}
