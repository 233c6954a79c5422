package service

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/qs3c/aa_questions/internal/repository"
	"github.com/qs3c/aa_questions/internal/testutil"
)

type services struct {
	db        *gorm.DB
	users     *UserService
	questions *QuestionService
	replies   *ReplyService
}

func setupServices(t *testing.T) (*services, func()) {
	t.Helper()
	return newServices(t, zap.NewNop())
}

// setupServicesWithLogs 返回的 ObservedLogs 记录服务层写出的所有日志
func setupServicesWithLogs(t *testing.T) (*services, *observer.ObservedLogs, func()) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	s, cleanup := newServices(t, zap.New(core))
	return s, logs, cleanup
}

func newServices(t *testing.T, zl *zap.Logger) (*services, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)

	s := &services{
		db:        db,
		users:     NewUserService(repos, zl),
		questions: NewQuestionService(repos, zl),
		replies:   NewReplyService(repos, zl),
	}

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return s, cleanup
}
