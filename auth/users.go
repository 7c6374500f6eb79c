// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{3,64}$`)

// User is one entry of the users file
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// FileUserStore keeps accounts in a JSON file.
// Lookups are case-insensitive on the username.
type FileUserStore struct {
	path string

	mu    sync.RWMutex
	users map[string]User
}

// NewFileUserStore loads the users file. A missing file is an empty store.
func NewFileUserStore(path string) (*FileUserStore, error) {
	s := &FileUserStore{path: path, users: make(map[string]User)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return s, nil
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse users file: %w", err)
	}
	for _, u := range users {
		s.users[strings.ToLower(u.Username)] = u
	}
	return s, nil
}

// Authenticate checks a username and password
func (s *FileUserStore) Authenticate(username, password string) error {
	s.mu.RLock()
	u, ok := s.users[strings.ToLower(strings.TrimSpace(username))]
	s.mu.RUnlock()

	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Register creates an account and persists the users file
func (s *FileUserStore) Register(username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return User{}, ErrInvalidUsername
	}
	if len(password) < minPasswordLen {
		return User{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(username)
	if _, exists := s.users[key]; exists {
		return User{}, ErrUserExists
	}

	u := User{Username: username, PasswordHash: string(hash), CreatedAt: time.Now().UTC()}
	s.users[key] = u
	if err := s.saveLocked(); err != nil {
		delete(s.users, key)
		return User{}, err
	}
	return u, nil
}

// Exists reports whether an account with this username exists
func (s *FileUserStore) Exists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[strings.ToLower(strings.TrimSpace(username))]
	return ok
}

// saveLocked writes the file through a temp file and rename
func (s *FileUserStore) saveLocked() error {
	users := make([]User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".users-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp users file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write users file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace users file: %w", err)
	}
	return nil
}

// dummyHash is compared against when the user does not exist
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("olympics-placeholder"), bcrypt.DefaultCost)
