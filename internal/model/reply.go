package model

// Reply 回复可挂在另一条回复下面，ParentReply 为空表示一级回复
type Reply struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	QuestionID  int64  `gorm:"not null;index" json:"question_id"`
	ParentReply *int64 `gorm:"column:parent_reply;index" json:"parent_reply,omitempty"`
	UserID      int64  `gorm:"not null;index" json:"user_id"`
	Body        string `gorm:"type:text;not null" json:"body"`
}

func (Reply) TableName() string {
	return "replies"
}

func (r *Reply) ScanFields() map[string]interface{} {
	return map[string]interface{}{
		"id":           &r.ID,
		"question_id":  &r.QuestionID,
		"parent_reply": &r.ParentReply,
		"user_id":      &r.UserID,
		"body":         &r.Body,
	}
}

func (r *Reply) IsRoot() bool {
	return r.ParentReply == nil
}
