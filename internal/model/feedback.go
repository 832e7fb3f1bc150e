package model

// Feedback 访客意见反馈，提交后不可修改
type Feedback struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(64);not null" json:"name"`
	Email     string `gorm:"type:varchar(128);not null" json:"email"`
	Content   string `gorm:"type:text;not null" json:"content"`
	CreatedAt string `gorm:"type:varchar(32);not null" json:"created_at"`
}

func (*Feedback) TableName() string {
	return "feedback"
}
