package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"

	"gorm.io/gorm"

	"github.com/saihein2480/au-connect/internal/model"
	"github.com/saihein2480/au-connect/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsernameOrEmail(_ context.Context, username, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock ContactRepository ──

type mockContactRepo struct {
	contacts map[string]*model.Contact
	seq      int
}

func newMockContactRepo() *mockContactRepo {
	return &mockContactRepo{contacts: make(map[string]*model.Contact)}
}

func (m *mockContactRepo) Create(_ context.Context, contact *model.Contact) error {
	if contact.ContactID == "" {
		m.seq++
		contact.ContactID = fmt.Sprintf("contact-%d", m.seq)
	}
	m.contacts[contact.ContactID] = contact
	return nil
}

func (m *mockContactRepo) GetByID(_ context.Context, id string) (*model.Contact, error) {
	if c, ok := m.contacts[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContactRepo) List(_ context.Context) ([]model.Contact, error) {
	var result []model.Contact
	for _, c := range m.contacts {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockContactRepo) Update(_ context.Context, contact *model.Contact) error {
	m.contacts[contact.ContactID] = contact
	return nil
}

func (m *mockContactRepo) Delete(_ context.Context, id string) error {
	delete(m.contacts, id)
	return nil
}

// ── Mock AnnouncementRepository ──

type mockAnnouncementRepo struct {
	anns map[string]*model.Announcement
	seq  int
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{anns: make(map[string]*model.Announcement)}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, ann *model.Announcement) error {
	if ann.AnnouncementID == "" {
		m.seq++
		ann.AnnouncementID = fmt.Sprintf("ann-%d", m.seq)
	}
	m.anns[ann.AnnouncementID] = ann
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id string) (*model.Announcement, error) {
	if a, ok := m.anns[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) List(_ context.Context) ([]model.Announcement, error) {
	var result []model.Announcement
	for _, a := range m.anns {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockAnnouncementRepo) Update(_ context.Context, ann *model.Announcement) error {
	m.anns[ann.AnnouncementID] = ann
	return nil
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id string) error {
	delete(m.anns, id)
	return nil
}

// ── Mock blob store ──

type mockBlobStore struct {
	saved []string
	err   error
}

func (m *mockBlobStore) Save(fh *multipart.FileHeader) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	name := fmt.Sprintf("1700000000000-%s", fh.Filename)
	m.saved = append(m.saved, name)
	return name, nil
}

// ── Assembly helpers ──

func newTestRepo() (*repository.Repository, *mockUserRepo, *mockContactRepo, *mockAnnouncementRepo) {
	users := newMockUserRepo()
	contacts := newMockContactRepo()
	anns := newMockAnnouncementRepo()
	repo := &repository.Repository{
		User:         users,
		Contact:      contacts,
		Announcement: anns,
	}
	return repo, users, contacts, anns
}
