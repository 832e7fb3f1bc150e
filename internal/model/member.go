package model

// Member 学生会成员，前端按 department 分组展示
type Member struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(64);not null" json:"name"`
	Department string `gorm:"type:varchar(64);not null" json:"department"` // 部门，如 主席团、学习部、文体部
	Role       string `gorm:"type:varchar(64);not null" json:"role"`
	Intro      string `gorm:"type:text;not null" json:"intro"`
	ImageURL   string `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt  string `gorm:"type:varchar(32);not null" json:"created_at"`
}

func (*Member) TableName() string {
	return "members"
}
