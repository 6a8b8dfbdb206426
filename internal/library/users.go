package library

import (
	"fmt"
	"strings"

	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
)

const newUserBio = "Music lover joining Melody View."

func (l *Library) loadUsers() ([]models.User, error) {
	var users []models.User
	ok, err := l.store.ReadJSON(store.KeyUsers, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if !ok {
		users = seedUsers()
		if err := l.store.WriteJSON(store.KeyUsers, users); err != nil {
			return nil, fmt.Errorf("failed to seed users: %w", err)
		}
		l.logger.Debug("seeded user collection", "count", len(users))
	}
	return users, nil
}

func (l *Library) saveUsers(users []models.User) error {
	if err := l.store.WriteJSON(store.KeyUsers, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// Register creates an account and signs it in. Emails must be unique across
// all stored accounts.
func (l *Library) Register(username, email, password string) (models.User, error) {
	users, err := l.loadUsers()
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return models.User{}, shared.ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:        shared.GenerateID(),
		Username:  username,
		Email:     email,
		Password:  password,
		AvatarURL: fmt.Sprintf("https://picsum.photos/200/200?random=%d", l.now().UnixMilli()),
		Bio:       newUserBio,
		Role:      models.RoleUser,
	}
	if err := user.Validate(); err != nil {
		return models.User{}, err
	}

	users = append(users, user)
	if err := l.saveUsers(users); err != nil {
		return models.User{}, err
	}
	if err := l.session.Set(user); err != nil {
		return models.User{}, err
	}

	l.logger.Info("registered account", "username", username)
	return user, nil
}

// Login signs in the account matching the given email and password.
func (l *Library) Login(email, password string) (models.User, error) {
	users, err := l.loadUsers()
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := l.session.Set(u); err != nil {
				return models.User{}, err
			}
			return u, nil
		}
	}
	return models.User{}, shared.ErrInvalidCredentials
}

// Logout signs out the current user. Logging out when nobody is signed in
// succeeds quietly.
func (l *Library) Logout() error {
	return l.session.Clear()
}

// CurrentUser returns the signed-in user, or nil.
func (l *Library) CurrentUser() *models.User {
	return l.session.Current()
}

// UpdateUser replaces the stored account with the same ID. An unknown ID is
// a silent no-op. When the updated account is the signed-in user the session
// is refreshed to match.
func (l *Library) UpdateUser(updated models.User) error {
	users, err := l.loadUsers()
	if err != nil {
		return err
	}

	for i, u := range users {
		if u.ID == updated.ID {
			users[i] = updated
			if err := l.saveUsers(users); err != nil {
				return err
			}
			if current := l.session.Current(); current != nil && current.ID == updated.ID {
				return l.session.Set(updated)
			}
			return nil
		}
	}
	return nil
}

// ListUsers returns every stored account.
func (l *Library) ListUsers() ([]models.User, error) {
	return l.loadUsers()
}

// DeleteUser removes an account. Deleting the last remaining admin is
// refused; deleting an unknown ID succeeds without effect.
func (l *Library) DeleteUser(userID string) error {
	users, err := l.loadUsers()
	if err != nil {
		return err
	}

	var target *models.User
	admins := 0
	for i, u := range users {
		if u.IsAdmin() {
			admins++
		}
		if u.ID == userID {
			target = &users[i]
		}
	}
	if target != nil && target.IsAdmin() && admins <= 1 {
		return shared.ErrLastAdminProtected
	}

	kept := users[:0]
	for _, u := range users {
		if u.ID != userID {
			kept = append(kept, u)
		}
	}
	return l.saveUsers(kept)
}
