package model

// User is an account in the users table. PasswordHash is nullable: records
// created through legacy imports may not carry one, and it never leaves the
// server in JSON.
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string  `gorm:"type:varchar(100);not null;uniqueIndex"         json:"username"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash *string `gorm:"type:varchar(255)"                              json:"-"`
	DisplayName  string  `gorm:"type:varchar(100);not null;default:''"          json:"displayName"`
	Faculty      string  `gorm:"type:varchar(100);not null;default:''"          json:"faculty"`
	Gender       string  `gorm:"type:varchar(20);not null;default:''"           json:"gender"`
	StudentID    *string `gorm:"type:varchar(20)"                               json:"studentId"`
	Role         string  `gorm:"type:varchar(20);not null;default:'user'"       json:"role"`
	Timestamps
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
