package model

// Notice 通知公告，按发布时间倒序展示
type Notice struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Content     string `gorm:"type:text;not null" json:"content"`
	PublishTime string `gorm:"type:varchar(32);not null" json:"publish_time"` // 发布时间，展示用字符串
	CreatedAt   string `gorm:"type:varchar(32);not null" json:"created_at"`
}

func (*Notice) TableName() string {
	return "notices"
}
