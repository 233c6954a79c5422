package model

type QuestionFollow struct {
	ID         int64 `gorm:"primaryKey" json:"id"`
	UserID     int64 `gorm:"not null;index" json:"user_id"`
	QuestionID int64 `gorm:"not null;index" json:"question_id"`
}

func (QuestionFollow) TableName() string {
	return "question_follows"
}

func (f *QuestionFollow) ScanFields() map[string]interface{} {
	return map[string]interface{}{
		"id":          &f.ID,
		"user_id":     &f.UserID,
		"question_id": &f.QuestionID,
	}
}
