package model

type Question struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Body     string `gorm:"type:text;not null" json:"body"`
	AuthorID int64  `gorm:"not null;index" json:"author_id"`
}

func (Question) TableName() string {
	return "questions"
}

func (q *Question) ScanFields() map[string]interface{} {
	return map[string]interface{}{
		"id":        &q.ID,
		"title":     &q.Title,
		"body":      &q.Body,
		"author_id": &q.AuthorID,
	}
}
