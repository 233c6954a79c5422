// Package repository 只读数据访问层：每个查询方法对应一条固定的参数化 SQL。
package repository

import "gorm.io/gorm"

// Repositories 汇总所有 repository，共享同一个注入的连接
type Repositories struct {
	Users           *UserRepository
	Questions       *QuestionRepository
	QuestionFollows *QuestionFollowRepository
	Replies         *ReplyRepository
	QuestionLikes   *QuestionLikeRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(db),
		Questions:       NewQuestionRepository(db),
		QuestionFollows: NewQuestionFollowRepository(db),
		Replies:         NewReplyRepository(db),
		QuestionLikes:   NewQuestionLikeRepository(db),
	}
}
