package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/aa_questions/internal/model"
)

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		FName: fmt.Sprintf("first_%d", time.Now().UnixNano()%10000),
		LName: "Tester",
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithName 设置姓名
func WithName(fname, lname string) func(*model.User) {
	return func(u *model.User) {
		u.FName = fname
		u.LName = lname
	}
}

// TestQuestion 创建测试问题
func TestQuestion(t *testing.T, db *gorm.DB, authorID int64, opts ...func(*model.Question)) *model.Question {
	t.Helper()

	question := &model.Question{
		Title:    fmt.Sprintf("Test Question %d", time.Now().UnixNano()%10000),
		Body:     "How does this work?",
		AuthorID: authorID,
	}

	for _, opt := range opts {
		opt(question)
	}

	if err := db.Create(question).Error; err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return question
}

// WithTitle 设置问题标题
func WithTitle(title string) func(*model.Question) {
	return func(q *model.Question) {
		q.Title = title
	}
}

// WithBody 设置问题内容
func WithBody(body string) func(*model.Question) {
	return func(q *model.Question) {
		q.Body = body
	}
}

// TestReply 创建一级回复
func TestReply(t *testing.T, db *gorm.DB, userID, questionID int64, body string) *model.Reply {
	t.Helper()

	reply := &model.Reply{
		QuestionID: questionID,
		UserID:     userID,
		Body:       body,
	}

	if err := db.Create(reply).Error; err != nil {
		t.Fatalf("Failed to create test reply: %v", err)
	}

	return reply
}

// TestChildReply 创建挂在 parentID 下的回复
func TestChildReply(t *testing.T, db *gorm.DB, userID, questionID, parentID int64, body string) *model.Reply {
	t.Helper()

	reply := &model.Reply{
		QuestionID:  questionID,
		ParentReply: &parentID,
		UserID:      userID,
		Body:        body,
	}

	if err := db.Create(reply).Error; err != nil {
		t.Fatalf("Failed to create test child reply: %v", err)
	}

	return reply
}

// TestFollow 创建关注记录
func TestFollow(t *testing.T, db *gorm.DB, userID, questionID int64) *model.QuestionFollow {
	t.Helper()

	follow := &model.QuestionFollow{
		UserID:     userID,
		QuestionID: questionID,
	}

	if err := db.Create(follow).Error; err != nil {
		t.Fatalf("Failed to create test follow: %v", err)
	}

	return follow
}

// TestLike 创建点赞记录
func TestLike(t *testing.T, db *gorm.DB, userID, questionID int64) *model.QuestionLike {
	t.Helper()

	like := &model.QuestionLike{
		UserID:     userID,
		QuestionID: questionID,
	}

	if err := db.Create(like).Error; err != nil {
		t.Fatalf("Failed to create test like: %v", err)
	}

	return like
}
