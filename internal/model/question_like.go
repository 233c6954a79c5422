package model

type QuestionLike struct {
	ID         int64 `gorm:"primaryKey" json:"id"`
	UserID     int64 `gorm:"not null;index" json:"user_id"`
	QuestionID int64 `gorm:"not null;index" json:"question_id"`
}

func (QuestionLike) TableName() string {
	return "question_likes"
}

func (l *QuestionLike) ScanFields() map[string]interface{} {
	return map[string]interface{}{
		"id":          &l.ID,
		"user_id":     &l.UserID,
		"question_id": &l.QuestionID,
	}
}
