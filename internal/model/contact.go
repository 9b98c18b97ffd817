package model

// Contact is a directory entry. Role here is a free-text label ("Lecturer",
// "Dean office"), not an account role. CreatedBy references the creating
// User by id; it is set once and never revalidated or cascaded.
type Contact struct {
	ContactID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Faculty        string  `gorm:"type:varchar(100);not null"                     json:"faculty"`
	Role           string  `gorm:"type:varchar(100);not null"                     json:"role"`
	Department     string  `gorm:"type:varchar(100);not null;default:''"          json:"department"`
	Email          string  `gorm:"type:varchar(255);not null;default:''"          json:"email"`
	Phone          string  `gorm:"type:varchar(50);not null;default:''"           json:"phone"`
	Facebook       string  `gorm:"type:varchar(255);not null;default:''"          json:"facebook"`
	Line           string  `gorm:"type:varchar(100);not null;default:''"          json:"line"`
	Gender         string  `gorm:"type:varchar(20);not null;default:''"           json:"gender"`
	ProfilePicture *string `gorm:"type:varchar(255)"                              json:"profilePicture"`
	CreatedBy      string  `gorm:"type:uuid;not null"                             json:"createdBy"`
	Timestamps
}

// TableName sets the table name.
func (Contact) TableName() string { return "contacts" }
