package model

import (
	"time"
)

type Major struct {
	Id          int       `gorm:"primaryKey;autoIncrement"`
	SchoolId    int       `gorm:"column:truong_id;not null;index;uniqueIndex:uq_truong_nganh"`
	Code        string    `gorm:"column:ma_nganh;type:varchar(20);not null;index;uniqueIndex:uq_truong_nganh"`
	Name        string    `gorm:"column:ten_nganh;type:varchar(255);not null"`
	NameFolded  string    `gorm:"column:ten_khong_dau;type:varchar(255);index"`
	Description string    `gorm:"column:mo_ta;type:text"`
	Active      bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Major) TableName() string {
	return "nganh"
}
