package model

// 活动状态：即将开始 / 进行中 / 已结束
const (
	StatusUpcoming = "upcoming"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// NormalizeStatus 将枚举外的状态归一为 upcoming，与前端约定保持宽松
func NormalizeStatus(status string) string {
	switch status {
	case StatusUpcoming, StatusOngoing, StatusFinished:
		return status
	default:
		return StatusUpcoming
	}
}

// Activity 活动，start_time / end_time 为自由文本的时间段描述
type Activity struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	StartTime   string `gorm:"type:varchar(64);not null" json:"start_time"`
	EndTime     string `gorm:"type:varchar(64);not null" json:"end_time"`
	Status      string `gorm:"type:varchar(16);not null" json:"status"`
	ImageURL    string `gorm:"type:varchar(255)" json:"image_url"` // 活动封面URL，可为空
	CreatedAt   string `gorm:"type:varchar(32);not null" json:"created_at"`
}

func (*Activity) TableName() string {
	return "activities"
}
