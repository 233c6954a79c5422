package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/aa_questions/internal/model"
)

const (
	replyByIDSQL = `
		SELECT
			*
		FROM
			replies
		WHERE
			replies.id = ?`

	repliesByUserSQL = `
		SELECT
			*
		FROM
			replies
		WHERE
			replies.user_id = ?`

	repliesByQuestionSQL = `
		SELECT
			*
		FROM
			replies
		WHERE
			replies.question_id = ?`

	repliesByParentSQL = `
		SELECT
			*
		FROM
			replies
		WHERE
			replies.parent_reply = ?`
)

type ReplyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) *ReplyRepository {
	return &ReplyRepository{db: db}
}

func (r *ReplyRepository) GetByID(id int64) (*model.Reply, error) {
	return queryOne[model.Reply](r.db, replyByIDSQL, id)
}

// ListByUserID 获取用户发表的回复
func (r *ReplyRepository) ListByUserID(userID int64) ([]*model.Reply, error) {
	return queryAll[model.Reply](r.db, repliesByUserSQL, userID)
}

// ListByQuestionID 获取问题下的全部回复（含嵌套回复）
func (r *ReplyRepository) ListByQuestionID(questionID int64) ([]*model.Reply, error) {
	return queryAll[model.Reply](r.db, repliesByQuestionSQL, questionID)
}

// ListByParentID 获取直接子回复
func (r *ReplyRepository) ListByParentID(parentID int64) ([]*model.Reply, error) {
	return queryAll[model.Reply](r.db, repliesByParentSQL, parentID)
}
