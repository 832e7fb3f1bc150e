package model

// Admin 管理员账号，密码仅存单向加盐哈希
type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    string `gorm:"type:varchar(32);not null" json:"created_at"`
}

func (*Admin) TableName() string {
	return "admin"
}
