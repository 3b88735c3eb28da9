package entities

import "time"

// Document is an uploaded template/manual/checklist in the downloads area.
// Content lives in the blob store under FileKey; the row holds metadata only.
type Document struct {
	ID         string    `gorm:"column:id;primaryKey" json:"id"`
	Name       string    `gorm:"column:name" json:"name"`
	Type       string    `gorm:"column:type;index" json:"type"`
	FileName   string    `gorm:"column:file_name" json:"file"`
	FileKey    string    `gorm:"column:file_key" json:"-"`
	UploadedBy string    `gorm:"column:uploaded_by" json:"uploaded_by"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
}

// TableName specifies the table name for GORM
func (Document) TableName() string {
	return "documents"
}
