package model

import (
	"time"
)

type User struct {
	ID       uint64 `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(50);not null;uniqueIndex:idx_username"`
	Password string `gorm:"type:varchar(255);not null"`
	Nickname string `gorm:"type:varchar(50)"`
	// Roles 以逗号分隔保存，如 "EDITOR,ADMIN"；普通读者为空
	Roles     string `gorm:"type:varchar(255)"`
	IsBan     bool   `gorm:"type:tinyint(1);default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
