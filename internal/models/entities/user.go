package entities

import (
	"time"

	"aeromaint/opsdesk/internal/constants"
)

// Account is a portal login identity. Credentials are plaintext demo seeds;
// there is deliberately no real credential handling here.
type Account struct {
	ID        string         `gorm:"column:id;primaryKey" json:"id"`
	Username  string         `gorm:"column:username;uniqueIndex" json:"username"`
	Password  string         `gorm:"column:password" json:"-"`
	Role      constants.Role `gorm:"column:role" json:"role"`
	Avatar    string         `gorm:"column:avatar" json:"avatar"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"-"`
}

// TableName specifies the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// User is a managed personnel entry (Group Chief, Pilot, Data Analyst) in the
// chief's users management view.
type User struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Role      string    `gorm:"column:role" json:"role"`
	Email     string    `gorm:"column:email" json:"email"`
	Status    string    `gorm:"column:status" json:"status"`
	Username  string    `gorm:"column:username" json:"username"`
	Password  string    `gorm:"column:password" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
