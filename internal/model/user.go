package model

type User struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	FName string `gorm:"column:fname;not null" json:"fname"`
	LName string `gorm:"column:lname;not null" json:"lname"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) ScanFields() map[string]interface{} {
	return map[string]interface{}{
		"id":    &u.ID,
		"fname": &u.FName,
		"lname": &u.LName,
	}
}
