package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/qs3c/aa_questions/internal/repository"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrReplyNotFound    = errors.New("reply not found")
	ErrRootReply        = errors.New("reply has no parent reply")
)

// mapNotFound 把 repository 的未命中转换为领域错误，其他错误原样返回并记录
func mapNotFound(zl *zap.Logger, err error, notFound error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return storeErr(zl, err, op)
}

// storeErr 记录非预期的存储错误并原样返回；err 为 nil 时直接返回 nil
func storeErr(zl *zap.Logger, err error, op string) error {
	if err != nil {
		zl.Warn("store query failed", zap.String("op", op), zap.Error(err))
	}
	return err
}
