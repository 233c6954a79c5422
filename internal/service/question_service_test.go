package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/aa_questions/internal/model"
	"github.com/qs3c/aa_questions/internal/testutil"
)

func TestQuestionService_GetByID(t *testing.T) {
	s, cleanup := setupServices(t)
	defer cleanup()

	author := testutil.TestUser(t, s.db)
	created := testutil.TestQuestion(t, s.db, author.ID)

	question, err := s.questions.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, question.ID)

	_, err = s.questions.GetByID(99999)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestQuestionService_Author(t *testing.T) {
	s, cleanup := setupServices(t)
	defer cleanup()

	ned := testutil.TestUser(t, s.db, testutil.WithName("Ned", "Ruggeri"))
	created := testutil.TestQuestion(t, s.db, ned.ID, testutil.WithTitle("SQL Joins"))

	question, err := s.questions.GetByID(created.ID)
	require.NoError(t, err)

	author, err := s.questions.Author(question)
	require.NoError(t, err)
	assert.Equal(t, "Ned", author.FName)
}

func TestQuestionService_Author_Missing(t *testing.T) {
	s, cleanup := setupServices(t)
	defer cleanup()

	_, err := s.questions.Author(&model.Question{ID: 1, AuthorID: 99999})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestQuestionService_RepliesFollowersLikers(t *testing.T) {
	s, cleanup := setupServices(t)
	defer cleanup()

	author := testutil.TestUser(t, s.db)
	fan := testutil.TestUser(t, s.db, testutil.WithName("Kush", "Patel"))
	question := testutil.TestQuestion(t, s.db, author.ID)
	reply := testutil.TestReply(t, s.db, fan.ID, question.ID, "Great question")
	testutil.TestFollow(t, s.db, fan.ID, question.ID)
	testutil.TestLike(t, s.db, fan.ID, question.ID)
	testutil.TestLike(t, s.db, author.ID, question.ID)

	replies, err := s.questions.Replies(question)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, reply.ID, replies[0].ID)

	followers, err := s.questions.Followers(question)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, fan.ID, followers[0].ID)

	likers, err := s.questions.Likers(question)
	require.NoError(t, err)
	assert.Len(t, likers, 2)

	count, err := s.questions.NumLikes(question)
	require.NoError(t, err)
	assert.Equal(t, int64(len(likers)), count)
}

func TestQuestionService_MostFollowed(t *testing.T) {
	s, cleanup := setupServices(t)
	defer cleanup()

	u1 := testutil.TestUser(t, s.db)
	u2 := testutil.TestUser(t, s.db)
	less := testutil.TestQuestion(t, s.db, u1.ID)
	more := testutil.TestQuestion(t, s.db, u1.ID)
	testutil.TestFollow(t, s.db, u1.ID, less.ID)
	testutil.TestFollow(t, s.db, u1.ID, more.ID)
	testutil.TestFollow(t, s.db, u2.ID, more.ID)

	top, err := s.questions.MostFollowed(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, more.ID, top[0].ID)

	top, err = s.questions.MostFollowed(5)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(top), 5)
	require.Len(t, top, 2)
	assert.Equal(t, less.ID, top[1].ID)
}
