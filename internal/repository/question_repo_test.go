package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/aa_questions/internal/testutil"
)

func TestQuestionRepository_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewQuestionRepository(db)
	author := testutil.TestUser(t, db)
	created := testutil.TestQuestion(t, db, author.ID,
		testutil.WithTitle("SQL Joins"), testutil.WithBody("What is a LEFT OUTER JOIN?"))

	found, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "SQL Joins", found.Title)
	assert.Equal(t, "What is a LEFT OUTER JOIN?", found.Body)
	assert.Equal(t, author.ID, found.AuthorID)
}

func TestQuestionRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewQuestionRepository(db)

	_, err := repo.GetByID(99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestionRepository_ListByAuthorID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewQuestionRepository(db)
	author := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)

	q1 := testutil.TestQuestion(t, db, author.ID)
	q2 := testutil.TestQuestion(t, db, author.ID)
	testutil.TestQuestion(t, db, other.ID)

	questions, err := repo.ListByAuthorID(author.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	ids := []int64{questions[0].ID, questions[1].ID}
	assert.ElementsMatch(t, []int64{q1.ID, q2.ID}, ids)
	for _, q := range questions {
		assert.Equal(t, author.ID, q.AuthorID)
	}
}

func TestQuestionRepository_ListByAuthorID_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewQuestionRepository(db)
	author := testutil.TestUser(t, db)

	questions, err := repo.ListByAuthorID(author.ID)
	require.NoError(t, err)
	assert.Empty(t, questions)
}
