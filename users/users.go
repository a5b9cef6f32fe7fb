// Package users manages terminal operator accounts (admin and employee).
package users

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/rainielmontanez/FSSPOS/models"
	"github.com/rainielmontanez/FSSPOS/store"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrBadCredentials    = errors.New("invalid username or password")
	ErrDuplicateUsername = errors.New("username already taken")
)

type Store struct {
	mu sync.Mutex
	db store.Store
}

func New(db store.Store) *Store {
	return &Store{db: db}
}

// List returns all users with password hashes blanked.
func (s *Store) List() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Store) Create(name, username, password, role string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.load()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return models.User{}, ErrDuplicateUsername
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	u := models.User{
		ID:           nextID(users),
		Name:         name,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	users = append(users, u)
	if err := s.db.Write(store.KeyUsers, users); err != nil {
		return models.User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}

// Authenticate checks the password against the stored bcrypt hash. Unknown
// usernames and wrong passwords both return ErrBadCredentials.
func (s *Store) Authenticate(username, password string) (models.User, error) {
	s.mu.Lock()
	users, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return models.User{}, ErrBadCredentials
		}
		u.PasswordHash = ""
		return u, nil
	}
	return models.User{}, ErrBadCredentials
}

// SeedDefaultAdmin creates the initial admin account when no users exist yet.
func (s *Store) SeedDefaultAdmin(password string) error {
	s.mu.Lock()
	users, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	_, err = s.Create("Administrator", "admin", password, models.RoleAdmin)
	return err
}

// caller holds mu
func (s *Store) load() ([]models.User, error) {
	var users []models.User
	err := s.db.Read(store.KeyUsers, &users)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return users, nil
}

func nextID(users []models.User) int64 {
	var max int64
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
