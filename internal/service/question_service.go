package service

import (
	"go.uber.org/zap"

	"github.com/qs3c/aa_questions/internal/model"
	"github.com/qs3c/aa_questions/internal/repository"
)

type QuestionService struct {
	questionRepo *repository.QuestionRepository
	userRepo     *repository.UserRepository
	replyRepo    *repository.ReplyRepository
	followRepo   *repository.QuestionFollowRepository
	likeRepo     *repository.QuestionLikeRepository
	log          *zap.Logger
}

func NewQuestionService(repos *repository.Repositories, zl *zap.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: repos.Questions,
		userRepo:     repos.Users,
		replyRepo:    repos.Replies,
		followRepo:   repos.QuestionFollows,
		likeRepo:     repos.QuestionLikes,
		log:          zl.Named("question"),
	}
}

func (s *QuestionService) GetByID(id int64) (*model.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(s.log, err, ErrQuestionNotFound, "question.get_by_id")
	}
	return question, nil
}

func (s *QuestionService) ListByAuthorID(authorID int64) ([]*model.Question, error) {
	questions, err := s.questionRepo.ListByAuthorID(authorID)
	if err != nil {
		return nil, storeErr(s.log, err, "question.list_by_author_id")
	}
	return questions, nil
}

// Author 问题作者；作者记录缺失时返回 ErrUserNotFound
func (s *QuestionService) Author(q *model.Question) (*model.User, error) {
	s.log.Debug("author", zap.Int64("question_id", q.ID), zap.Int64("author_id", q.AuthorID))
	user, err := s.userRepo.GetByID(q.AuthorID)
	if err != nil {
		return nil, mapNotFound(s.log, err, ErrUserNotFound, "question.author")
	}
	return user, nil
}

func (s *QuestionService) Replies(q *model.Question) ([]*model.Reply, error) {
	s.log.Debug("replies", zap.Int64("question_id", q.ID))
	replies, err := s.replyRepo.ListByQuestionID(q.ID)
	if err != nil {
		return nil, storeErr(s.log, err, "question.replies")
	}
	return replies, nil
}

func (s *QuestionService) Followers(q *model.Question) ([]*model.User, error) {
	s.log.Debug("followers", zap.Int64("question_id", q.ID))
	users, err := s.followRepo.FollowersForQuestionID(q.ID)
	if err != nil {
		return nil, storeErr(s.log, err, "question.followers")
	}
	return users, nil
}

func (s *QuestionService) Likers(q *model.Question) ([]*model.User, error) {
	s.log.Debug("likers", zap.Int64("question_id", q.ID))
	users, err := s.likeRepo.LikersForQuestionID(q.ID)
	if err != nil {
		return nil, storeErr(s.log, err, "question.likers")
	}
	return users, nil
}

func (s *QuestionService) NumLikes(q *model.Question) (int64, error) {
	s.log.Debug("num likes", zap.Int64("question_id", q.ID))
	count, err := s.likeRepo.NumLikesForQuestionID(q.ID)
	if err != nil {
		return 0, storeErr(s.log, err, "question.num_likes")
	}
	return count, nil
}

// MostFollowed 关注数最多的前 n 个问题，按关注数降序
func (s *QuestionService) MostFollowed(n int) ([]*model.Question, error) {
	s.log.Debug("most followed", zap.Int("n", n))
	questions, err := s.followRepo.MostFollowedQuestions(n)
	if err != nil {
		return nil, storeErr(s.log, err, "question.most_followed")
	}
	return questions, nil
}
