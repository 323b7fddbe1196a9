package model

import (
	"time"
)

// School maps the truong table. Column names stay in Vietnamese to match
// the published admission datasets they are loaded from.
type School struct {
	Id          int        `gorm:"primaryKey;autoIncrement"`
	Code        string     `gorm:"column:ma_truong;type:varchar(20);uniqueIndex;not null"`
	Name        string     `gorm:"column:ten_truong;type:varchar(255);not null"`
	NameFolded  string     `gorm:"column:ten_khong_dau;type:varchar(255);index"`
	Kind        string     `gorm:"column:loai_truong;type:varchar(50);not null"` // 'quan_doi', 'cong_an', 'khac'
	Address     string     `gorm:"column:dia_chi;type:text"`
	Website     string     `gorm:"column:website;type:varchar(255)"`
	Description string     `gorm:"column:mo_ta;type:text"`
	Active      bool       `gorm:"default:true"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
	Majors      []Major    `gorm:"foreignKey:SchoolId"`
}

func (School) TableName() string {
	return "truong"
}
