package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/aa_questions/internal/testutil"
)

func TestNewRepositories_SharesConnection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repos := NewRepositories(db)
	author := testutil.TestUser(t, db, testutil.WithName("Ned", "Ruggeri"))
	question := testutil.TestQuestion(t, db, author.ID, testutil.WithTitle("SQL Joins"))

	user, err := repos.Users.GetByID(author.ID)
	require.NoError(t, err)

	questions, err := repos.Questions.ListByAuthorID(user.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, question.ID, questions[0].ID)
	assert.Equal(t, "SQL Joins", questions[0].Title)

	assert.Same(t, repos.Users.db, repos.QuestionLikes.db)
}
