package entities

import "time"

// MaintenanceRecord is the shared maintenance log. ATSEP drone entries and the
// generic records both land here; fields not used by a flow stay empty.
type MaintenanceRecord struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Equipment   string    `gorm:"column:equipment" json:"equipment"`
	Type        string    `gorm:"column:type" json:"type"`
	Date        string    `gorm:"column:date" json:"date"`
	Technician  string    `gorm:"column:technician" json:"tech"`
	Status      string    `gorm:"column:status" json:"status,omitempty"`
	NextDate    string    `gorm:"column:next_date" json:"next_date,omitempty"`
	PartsChange string    `gorm:"column:parts_changed" json:"parts,omitempty"`
	Description string    `gorm:"column:description" json:"desc"`
	Findings    string    `gorm:"column:findings" json:"findings,omitempty"`
	Actions     string    `gorm:"column:actions" json:"actions,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
}

// TableName specifies the table name for GORM
func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}
