package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saihein2480/au-connect/internal/model"
	"github.com/saihein2480/au-connect/pkg/response"
)

func envelope(data interface{}) response.Envelope {
	return response.Envelope{Message: "success", Data: data}
}

func TestLogin_InstallsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(envelope(map[string]interface{}{
			"success": true,
			"token":   "issued-token",
			"role":    "admin",
			"userId":  "user-1",
		}))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token != "issued-token" {
		t.Errorf("unexpected token: %s", result.Token)
	}
	if c.token != "issued-token" {
		t.Error("token must be installed on the client after login")
	}
}

func TestBearerHeaderSent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(envelope([]model.Contact{}))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("abc")
	if _, err := c.ListContacts(context.Background()); err != nil {
		t.Fatalf("ListContacts failed: %v", err)
	}
	if gotAuth != "Bearer abc" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestListContacts_DecodesRows(t *testing.T) {
	pic := "1700000000000-avatar.png"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(envelope([]model.Contact{
			{ContactID: "c-1", Name: "Dr. Somchai", Faculty: "VMES", ProfilePicture: &pic},
		}))
	}))
	defer srv.Close()

	contacts, err := New(srv.URL).ListContacts(context.Background())
	if err != nil {
		t.Fatalf("ListContacts failed: %v", err)
	}
	if len(contacts) != 1 || contacts[0].Name != "Dr. Somchai" {
		t.Errorf("unexpected rows: %+v", contacts)
	}
	if contacts[0].ProfilePicture == nil || *contacts[0].ProfilePicture != pic {
		t.Error("picture reference lost in decode")
	}
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(response.Envelope{
			Kind:    response.KindConflict,
			Message: "Username or email already exists.",
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Signup(context.Background(), nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Kind != response.KindConflict {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestCreateContact_SendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("request is not multipart: %v", err)
		}
		if r.FormValue("name") != "Dr. Somchai" {
			t.Errorf("name field missing, got %q", r.FormValue("name"))
		}
		f, fh, err := r.FormFile("profilePicture")
		if err != nil {
			t.Fatalf("file part missing: %v", err)
		}
		f.Close()
		if fh.Filename != "avatar.png" {
			t.Errorf("unexpected filename: %s", fh.Filename)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(envelope(model.Contact{ContactID: "c-1", Name: "Dr. Somchai"}))
	}))
	defer srv.Close()

	contact, err := New(srv.URL).CreateContact(context.Background(), &ContactForm{
		Name:    "Dr. Somchai",
		Faculty: "VMES",
		Role:    "Lecturer",
		Gender:  "male",
		Picture: &Upload{Filename: "avatar.png", Reader: strings.NewReader("img")},
	})
	if err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}
	if contact.ContactID != "c-1" {
		t.Errorf("unexpected contact: %+v", contact)
	}
}

func TestDeleteAnnouncement_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(response.Envelope{
			Kind:    response.KindNotFound,
			Message: "Announcement not found.",
		})
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteAnnouncement(context.Background(), "a-1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", apiErr.Status)
	}
}
