package entities

import "time"

// SparePart tracks drone spare-part stock. Low stock means Quantity <= Minimum.
type SparePart struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	PartID      string    `gorm:"column:part_id;uniqueIndex" json:"part_id"`
	Name        string    `gorm:"column:name;index" json:"name"`
	Description string    `gorm:"column:description" json:"desc"`
	Quantity    int       `gorm:"column:quantity" json:"qty"`
	Minimum     int       `gorm:"column:minimum" json:"min"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName specifies the table name for GORM
func (SparePart) TableName() string {
	return "spare_parts"
}

// IsLowStock reports whether the part has fallen to or below its minimum.
func (p SparePart) IsLowStock() bool {
	return p.Quantity <= p.Minimum
}

// PartUsage records one guarded stock decrement.
type PartUsage struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	PartID    string    `gorm:"column:part_id;index" json:"part_id"`
	Name      string    `gorm:"column:name" json:"name"`
	QtyUsed   int       `gorm:"column:qty_used" json:"qty_used"`
	User      string    `gorm:"column:user" json:"user"`
	Note      string    `gorm:"column:note" json:"note"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"date"`
}

// TableName specifies the table name for GORM
func (PartUsage) TableName() string {
	return "parts_usage_history"
}
