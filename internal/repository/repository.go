package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User         UserRepository
	Contact      ContactRepository
	Announcement AnnouncementRepository
}

// New creates the Repository aggregate over a gorm connection.
func New(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Contact:      NewContactRepo(db),
		Announcement: NewAnnouncementRepo(db),
	}
}
