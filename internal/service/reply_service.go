package service

import (
	"go.uber.org/zap"

	"github.com/qs3c/aa_questions/internal/model"
	"github.com/qs3c/aa_questions/internal/repository"
)

// ReplyNode 回复树中的一个节点
type ReplyNode struct {
	Reply    *model.Reply `json:"reply"`
	Children []*ReplyNode `json:"children,omitempty"`
}

type ReplyService struct {
	replyRepo    *repository.ReplyRepository
	questionRepo *repository.QuestionRepository
	userRepo     *repository.UserRepository
	log          *zap.Logger
}

func NewReplyService(repos *repository.Repositories, zl *zap.Logger) *ReplyService {
	return &ReplyService{
		replyRepo:    repos.Replies,
		questionRepo: repos.Questions,
		userRepo:     repos.Users,
		log:          zl.Named("reply"),
	}
}

func (s *ReplyService) GetByID(id int64) (*model.Reply, error) {
	reply, err := s.replyRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(s.log, err, ErrReplyNotFound, "reply.get_by_id")
	}
	return reply, nil
}

func (s *ReplyService) ListByUserID(userID int64) ([]*model.Reply, error) {
	replies, err := s.replyRepo.ListByUserID(userID)
	if err != nil {
		return nil, storeErr(s.log, err, "reply.list_by_user_id")
	}
	return replies, nil
}

func (s *ReplyService) ListByQuestionID(questionID int64) ([]*model.Reply, error) {
	replies, err := s.replyRepo.ListByQuestionID(questionID)
	if err != nil {
		return nil, storeErr(s.log, err, "reply.list_by_question_id")
	}
	return replies, nil
}

func (s *ReplyService) Author(r *model.Reply) (*model.User, error) {
	s.log.Debug("author", zap.Int64("reply_id", r.ID), zap.Int64("user_id", r.UserID))
	user, err := s.userRepo.GetByID(r.UserID)
	if err != nil {
		return nil, mapNotFound(s.log, err, ErrUserNotFound, "reply.author")
	}
	return user, nil
}

func (s *ReplyService) Question(r *model.Reply) (*model.Question, error) {
	s.log.Debug("question", zap.Int64("reply_id", r.ID), zap.Int64("question_id", r.QuestionID))
	question, err := s.questionRepo.GetByID(r.QuestionID)
	if err != nil {
		return nil, mapNotFound(s.log, err, ErrQuestionNotFound, "reply.question")
	}
	return question, nil
}

// ParentReply 上级回复；一级回复返回 ErrRootReply
func (s *ReplyService) ParentReply(r *model.Reply) (*model.Reply, error) {
	if r.IsRoot() {
		return nil, ErrRootReply
	}
	s.log.Debug("parent reply", zap.Int64("reply_id", r.ID), zap.Int64("parent_id", *r.ParentReply))
	parent, err := s.replyRepo.GetByID(*r.ParentReply)
	if err != nil {
		return nil, mapNotFound(s.log, err, ErrReplyNotFound, "reply.parent_reply")
	}
	return parent, nil
}

func (s *ReplyService) ChildReplies(r *model.Reply) ([]*model.Reply, error) {
	s.log.Debug("child replies", zap.Int64("reply_id", r.ID))
	children, err := s.replyRepo.ListByParentID(r.ID)
	if err != nil {
		return nil, storeErr(s.log, err, "reply.child_replies")
	}
	return children, nil
}

// Thread 用一次查询取出问题下全部回复并组装成树。
// 父回复不在该问题下、指向自身或处于环中的记录会被提升为一级回复，每条回复恰好出现一次。
func (s *ReplyService) Thread(q *model.Question) ([]*ReplyNode, error) {
	replies, err := s.replyRepo.ListByQuestionID(q.ID)
	if err != nil {
		return nil, storeErr(s.log, err, "reply.thread")
	}
	return buildThread(replies), nil
}

func buildThread(replies []*model.Reply) []*ReplyNode {
	nodes := make(map[int64]*ReplyNode, len(replies))
	for _, r := range replies {
		nodes[r.ID] = &ReplyNode{Reply: r}
	}

	parents := make(map[int64]*ReplyNode, len(replies))
	roots := make([]*ReplyNode, 0)
	for _, r := range replies {
		node := nodes[r.ID]
		if r.IsRoot() {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*r.ParentReply]
		if !ok || parent == node {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
		parents[r.ID] = parent
	}

	visited := make(map[int64]bool, len(replies))
	for _, root := range roots {
		markReachable(root, visited)
	}

	// 剩余未访问的节点都在环上或挂在环下：断开第一个节点与父节点的连接后提升为根
	for _, r := range replies {
		if visited[r.ID] {
			continue
		}
		node := nodes[r.ID]
		detach(parents[r.ID], node)
		roots = append(roots, node)
		markReachable(node, visited)
	}
	return roots
}

func markReachable(node *ReplyNode, visited map[int64]bool) {
	if visited[node.Reply.ID] {
		return
	}
	visited[node.Reply.ID] = true
	for _, child := range node.Children {
		markReachable(child, visited)
	}
}

func detach(parent, child *ReplyNode) {
	if parent == nil {
		return
	}
	kept := parent.Children[:0]
	for _, c := range parent.Children {
		if c != child {
			kept = append(kept, c)
		}
	}
	parent.Children = kept
}
