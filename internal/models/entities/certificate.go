package entities

import "time"

// Certificate is a drone calibration certificate with its uploaded file.
type Certificate struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	Name            string    `gorm:"column:name" json:"name"`
	Validation      string    `gorm:"column:validation" json:"validation"`
	DateAcquisition string    `gorm:"column:date_acquisition" json:"acq"`
	DateExpiration  string    `gorm:"column:date_expiration" json:"exp"`
	FileName        string    `gorm:"column:file_name" json:"file"`
	FileKey         string    `gorm:"column:file_key" json:"-"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

// TableName specifies the table name for GORM
func (Certificate) TableName() string {
	return "certificates"
}
