package service

import (
	"go.uber.org/zap"

	"github.com/qs3c/aa_questions/internal/model"
	"github.com/qs3c/aa_questions/internal/repository"
)

type UserService struct {
	userRepo     *repository.UserRepository
	questionRepo *repository.QuestionRepository
	replyRepo    *repository.ReplyRepository
	followRepo   *repository.QuestionFollowRepository
	likeRepo     *repository.QuestionLikeRepository
	log          *zap.Logger
}

func NewUserService(repos *repository.Repositories, zl *zap.Logger) *UserService {
	return &UserService{
		userRepo:     repos.Users,
		questionRepo: repos.Questions,
		replyRepo:    repos.Replies,
		followRepo:   repos.QuestionFollows,
		likeRepo:     repos.QuestionLikes,
		log:          zl.Named("user"),
	}
}

func (s *UserService) GetByID(id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(s.log, err, ErrUserNotFound, "user.get_by_id")
	}
	return user, nil
}

func (s *UserService) GetByName(fname, lname string) (*model.User, error) {
	user, err := s.userRepo.GetByName(fname, lname)
	if err != nil {
		return nil, mapNotFound(s.log, err, ErrUserNotFound, "user.get_by_name")
	}
	return user, nil
}

// AuthoredQuestions 用户发布的问题
func (s *UserService) AuthoredQuestions(u *model.User) ([]*model.Question, error) {
	s.log.Debug("authored questions", zap.Int64("user_id", u.ID))
	questions, err := s.questionRepo.ListByAuthorID(u.ID)
	if err != nil {
		return nil, storeErr(s.log, err, "user.authored_questions")
	}
	return questions, nil
}

// AuthoredReplies 用户发表的回复
func (s *UserService) AuthoredReplies(u *model.User) ([]*model.Reply, error) {
	s.log.Debug("authored replies", zap.Int64("user_id", u.ID))
	replies, err := s.replyRepo.ListByUserID(u.ID)
	if err != nil {
		return nil, storeErr(s.log, err, "user.authored_replies")
	}
	return replies, nil
}

func (s *UserService) FollowedQuestions(u *model.User) ([]*model.Question, error) {
	s.log.Debug("followed questions", zap.Int64("user_id", u.ID))
	questions, err := s.followRepo.FollowedQuestionsForUserID(u.ID)
	if err != nil {
		return nil, storeErr(s.log, err, "user.followed_questions")
	}
	return questions, nil
}

func (s *UserService) LikedQuestions(u *model.User) ([]*model.Question, error) {
	s.log.Debug("liked questions", zap.Int64("user_id", u.ID))
	questions, err := s.likeRepo.LikedQuestionsForUserID(u.ID)
	if err != nil {
		return nil, storeErr(s.log, err, "user.liked_questions")
	}
	return questions, nil
}
