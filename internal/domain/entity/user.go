package entity

import "time"

// User is a staff account. Accounts must be approved by an administrator
// before they can log in.
type User struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	IsApproved bool      `gorm:"not null;default:false;index" json:"is_approved"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Admin manages user accounts. At most MaxAdmins exist at any time.
type Admin struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}

const MaxAdmins = 3
