package model

type ExamBlock struct {
	Id          int    `gorm:"primaryKey;autoIncrement"`
	Code        string `gorm:"column:ma_khoi;type:varchar(10);uniqueIndex;not null"`
	Name        string `gorm:"column:ten_khoi;type:varchar(100);not null"`
	Subjects    string `gorm:"column:mon_hoc;type:varchar(255);not null"` // comma-separated
	Description string `gorm:"column:mo_ta;type:text"`
	Active      bool   `gorm:"default:true"`
}

func (ExamBlock) TableName() string {
	return "khoi_thi"
}
