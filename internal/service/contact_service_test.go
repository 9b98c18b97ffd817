package service

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"go.uber.org/zap"

	"github.com/saihein2480/au-connect/internal/dto"
)

func setupTestContactService() (ContactService, *mockContactRepo, *mockBlobStore) {
	repo, _, contacts, _ := newTestRepo()
	blobs := &mockBlobStore{}
	svc := NewContactService(repo, blobs, zap.NewNop())
	return svc, contacts, blobs
}

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: 128}
}

func TestContactCreate_WithPicture(t *testing.T) {
	svc, _, blobs := setupTestContactService()

	contact, err := svc.Create(context.Background(), &dto.CreateContactRequest{
		Name:           "Dr. Somchai",
		Faculty:        "VMES",
		Role:           "Lecturer",
		Gender:         "male",
		Email:          "somchai@au.edu",
		ProfilePicture: fileHeader("avatar.png"),
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create should succeed, got: %v", err)
	}
	if contact.ProfilePicture == nil {
		t.Fatal("picture filename must be stored")
	}
	if *contact.ProfilePicture != "1700000000000-avatar.png" {
		t.Errorf("unexpected stored filename: %s", *contact.ProfilePicture)
	}
	if len(blobs.saved) != 1 {
		t.Errorf("expected one saved blob, got %d", len(blobs.saved))
	}
	if contact.CreatedBy != "admin-1" {
		t.Errorf("createdBy must be the caller, got %s", contact.CreatedBy)
	}
}

func TestContactCreate_WithoutPicture(t *testing.T) {
	svc, _, blobs := setupTestContactService()

	contact, err := svc.Create(context.Background(), &dto.CreateContactRequest{
		Name:    "Dr. Somchai",
		Faculty: "VMES",
		Role:    "Lecturer",
		Gender:  "male",
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create should succeed, got: %v", err)
	}
	if contact.ProfilePicture != nil {
		t.Error("picture must be null when no file was uploaded")
	}
	if len(blobs.saved) != 0 {
		t.Error("no blob should be written without a file")
	}
}

func TestContactCreate_UploadFailureAbortsInsert(t *testing.T) {
	svc, contacts, blobs := setupTestContactService()
	blobs.err = errors.New("disk full")

	_, err := svc.Create(context.Background(), &dto.CreateContactRequest{
		Name:           "Dr. Somchai",
		Faculty:        "VMES",
		Role:           "Lecturer",
		Gender:         "male",
		ProfilePicture: fileHeader("avatar.png"),
	}, "admin-1")
	if err == nil {
		t.Fatal("Create must fail when the upload fails")
	}
	if got, _ := contacts.List(context.Background()); len(got) != 0 {
		t.Error("no contact may exist after a failed upload")
	}
}

func TestContactUpdate_PreservesPictureWhenNoFile(t *testing.T) {
	svc, _, _ := setupTestContactService()

	created, err := svc.Create(context.Background(), &dto.CreateContactRequest{
		Name:           "Dr. Somchai",
		Faculty:        "VMES",
		Role:           "Lecturer",
		Gender:         "male",
		ProfilePicture: fileHeader("avatar.png"),
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create should succeed, got: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ContactID, &dto.UpdateContactRequest{
		Name:    "Dr. Somchai Jr.",
		Faculty: "MSME",
	})
	if err != nil {
		t.Fatalf("Update should succeed, got: %v", err)
	}
	if updated.ProfilePicture == nil || *updated.ProfilePicture != *created.ProfilePicture {
		t.Error("update without a file must keep the stored picture")
	}
	if updated.Name != "Dr. Somchai Jr." {
		t.Errorf("name not updated: %s", updated.Name)
	}
	if updated.Faculty != "MSME" {
		t.Errorf("faculty not updated: %s", updated.Faculty)
	}
}

func TestContactUpdate_ReplacesPictureWithNewFile(t *testing.T) {
	svc, _, _ := setupTestContactService()

	created, _ := svc.Create(context.Background(), &dto.CreateContactRequest{
		Name:           "Dr. Somchai",
		Faculty:        "VMES",
		Role:           "Lecturer",
		Gender:         "male",
		ProfilePicture: fileHeader("old.png"),
	}, "admin-1")

	updated, err := svc.Update(context.Background(), created.ContactID, &dto.UpdateContactRequest{
		Name:           "Dr. Somchai",
		ProfilePicture: fileHeader("new.png"),
	})
	if err != nil {
		t.Fatalf("Update should succeed, got: %v", err)
	}
	if updated.ProfilePicture == nil || *updated.ProfilePicture != "1700000000000-new.png" {
		t.Errorf("picture not replaced: %v", updated.ProfilePicture)
	}
}

func TestContactUpdate_GenderUntouched(t *testing.T) {
	svc, contacts, _ := setupTestContactService()

	created, _ := svc.Create(context.Background(), &dto.CreateContactRequest{
		Name:    "Dr. Somchai",
		Faculty: "VMES",
		Role:    "Lecturer",
		Gender:  "male",
	}, "admin-1")

	if _, err := svc.Update(context.Background(), created.ContactID, &dto.UpdateContactRequest{
		Name: "Dr. Somchai",
	}); err != nil {
		t.Fatalf("Update should succeed, got: %v", err)
	}

	stored, _ := contacts.GetByID(context.Background(), created.ContactID)
	if stored.Gender != "male" {
		t.Errorf("gender must survive updates, got %q", stored.Gender)
	}
}

func TestContactUpdate_NotFound(t *testing.T) {
	svc, _, _ := setupTestContactService()

	_, err := svc.Update(context.Background(), "missing", &dto.UpdateContactRequest{Name: "X"})
	if !errors.Is(err, ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got: %v", err)
	}
}

func TestContactDelete(t *testing.T) {
	svc, _, _ := setupTestContactService()

	created, _ := svc.Create(context.Background(), &dto.CreateContactRequest{
		Name:    "Dr. Somchai",
		Faculty: "VMES",
		Role:    "Lecturer",
		Gender:  "male",
	}, "admin-1")

	if err := svc.Delete(context.Background(), created.ContactID); err != nil {
		t.Fatalf("Delete should succeed, got: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ContactID); !errors.Is(err, ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got: %v", err)
	}
}
