package model

import (
	"time"
)

// AdmissionScore maps the diem_chuan table, the main yearly-updated
// dataset. Queries never hit this table directly; the read path goes
// through the denormalized view_tra_cuu_diem view.
type AdmissionScore struct {
	Id          int       `gorm:"primaryKey;autoIncrement"`
	MajorId     int       `gorm:"column:nganh_id;not null;uniqueIndex:uq_diem_chuan"`
	ExamBlockId int       `gorm:"column:khoi_thi_id;not null;uniqueIndex:uq_diem_chuan"`
	Year        int       `gorm:"column:nam;not null;index;uniqueIndex:uq_diem_chuan"`
	Score       float64   `gorm:"column:diem_chuan;not null"`
	Quota       *int      `gorm:"column:chi_tieu"`
	Note        string    `gorm:"column:ghi_chu;type:text"`
	Gender      string    `gorm:"column:gioi_tinh;type:varchar(10);uniqueIndex:uq_diem_chuan"` // 'Nam', 'Nữ', '' (both)
	Region      string    `gorm:"column:khu_vuc;type:varchar(50);uniqueIndex:uq_diem_chuan"`   // 'KV1', 'KV2', ...
	Priority    string    `gorm:"column:doi_tuong;type:varchar(50)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (AdmissionScore) TableName() string {
	return "diem_chuan"
}
