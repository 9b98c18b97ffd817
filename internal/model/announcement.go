package model

// Announcement is a campus notice. Content holds rich HTML exactly as
// authored; CoverImage is the stored upload filename when present.
type Announcement struct {
	AnnouncementID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title          string  `gorm:"type:varchar(255);not null"                     json:"title"`
	Content        string  `gorm:"type:text;not null"                             json:"content"`
	CoverImage     *string `gorm:"type:varchar(255)"                              json:"coverImage"`
	Timestamps
}

// TableName sets the table name.
func (Announcement) TableName() string { return "announcements" }
