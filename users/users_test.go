package users

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rainielmontanez/FSSPOS/models"
	"github.com/rainielmontanez/FSSPOS/store"
)

func setupUsers(t *testing.T) *Store {
	t.Helper()
	db, err := store.OpenBolt(filepath.Join(t.TempDir(), "pos.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func TestCreateAndAuthenticate(t *testing.T) {
	s := setupUsers(t)
	u, err := s.Create("Ana", "ana", "secret123", models.RoleEmployee)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID != 1 || u.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", u)
	}

	got, err := s.Authenticate("ana", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != 1 || got.Role != models.RoleEmployee {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := s.Authenticate("ana", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if _, err := s.Authenticate("nobody", "secret123"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for unknown user, got %v", err)
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	s := setupUsers(t)
	if _, err := s.Create("Ana", "ana", "secret123", models.RoleEmployee); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create("Another Ana", "ana", "secret456", models.RoleAdmin); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestSeedDefaultAdmin(t *testing.T) {
	s := setupUsers(t)
	if err := s.SeedDefaultAdmin("bootpw"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	admin, err := s.Authenticate("admin", "bootpw")
	if err != nil {
		t.Fatalf("authenticate seeded admin: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}

	// seeding again with users present is a no-op
	if err := s.SeedDefaultAdmin("otherpw"); err != nil {
		t.Fatal(err)
	}
	list, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("expected single seeded admin, got %d users", len(list))
	}
}
