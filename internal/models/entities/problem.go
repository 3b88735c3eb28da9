package entities

import (
	"time"

	"aeromaint/opsdesk/internal/constants"
)

// ProblemReport is filed by airport clients. The integer id is issued by the
// store (autoincrement), never derived from list length.
type ProblemReport struct {
	ID             int                       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Airport        string                    `gorm:"column:airport" json:"airport"`
	System         string                    `gorm:"column:system" json:"system"`
	Priority       constants.ProblemPriority `gorm:"column:priority" json:"priority"`
	Reporter       string                    `gorm:"column:reporter;index" json:"reporter"`
	Contact        string                    `gorm:"column:contact" json:"contact"`
	Date           string                    `gorm:"column:date" json:"date"`
	Description    string                    `gorm:"column:description" json:"description"`
	Impact         string                    `gorm:"column:impact" json:"impact"`
	AdditionalInfo string                    `gorm:"column:additional_info" json:"additional_info"`
	Status         constants.ProblemStatus   `gorm:"column:status" json:"status"`
	CreatedAt      time.Time                 `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
	LastUpdated    time.Time                 `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

// TableName specifies the table name for GORM
func (ProblemReport) TableName() string {
	return "problem_reports"
}
