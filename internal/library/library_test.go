package library

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/session"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	sess, err := session.New(st)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	lib := New(st, sess, shared.NewLogger(io.Discard))
	lib.now = func() time.Time {
		return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	}
	lib.pick = func(n int) int { return 0 }
	return lib
}

func TestRegister(t *testing.T) {
	t.Run("creates and signs in the account", func(t *testing.T) {
		lib := newTestLibrary(t)

		user, err := lib.Register("NewUser", "new@example.com", "hunter2")
		if err != nil {
			t.Fatalf("register failed: %v", err)
		}
		if user.ID == "" {
			t.Error("expected a generated id")
		}
		if user.Role != models.RoleUser {
			t.Errorf("expected role user, got %q", user.Role)
		}
		if user.Bio != newUserBio {
			t.Errorf("unexpected bio %q", user.Bio)
		}
		if user.AvatarURL == "" {
			t.Error("expected a default avatar")
		}

		current := lib.CurrentUser()
		if current == nil || current.ID != user.ID {
			t.Error("expected registration to sign the account in")
		}

		users, err := lib.ListUsers()
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(users) != 3 {
			t.Errorf("expected 2 seeded accounts plus the new one, got %d", len(users))
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		lib := newTestLibrary(t)

		if _, err := lib.Register("Someone", "user@example.com", "pw"); !errors.Is(err, shared.ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("duplicate check is case insensitive", func(t *testing.T) {
		lib := newTestLibrary(t)

		if _, err := lib.Register("Someone", "USER@example.com", "pw"); !errors.Is(err, shared.ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		lib := newTestLibrary(t)

		if _, err := lib.Register("Someone", "not-an-email", "pw"); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	lib := newTestLibrary(t)

	t.Run("succeeds with seeded credentials", func(t *testing.T) {
		user, err := lib.Login("user@example.com", "password123")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if user.Username != "MelodyFan99" {
			t.Errorf("expected MelodyFan99, got %q", user.Username)
		}
		if lib.CurrentUser() == nil {
			t.Error("expected session to hold the signed-in user")
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		if _, err := lib.Login("user@example.com", "wrong"); !errors.Is(err, shared.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		if _, err := lib.Login("nobody@example.com", "pw"); !errors.Is(err, shared.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	lib := newTestLibrary(t)

	if _, err := lib.Login("user@example.com", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := lib.Logout(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if lib.CurrentUser() != nil {
		t.Error("expected no signed-in user after logout")
	}

	// Logging out twice is fine.
	if err := lib.Logout(); err != nil {
		t.Errorf("second logout failed: %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	t.Run("updates the stored record and the session", func(t *testing.T) {
		lib := newTestLibrary(t)

		user, err := lib.Login("user@example.com", "password123")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}

		user.Bio = "Updated bio"
		if err := lib.UpdateUser(user); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		current := lib.CurrentUser()
		if current == nil || current.Bio != "Updated bio" {
			t.Error("expected session to reflect the update")
		}

		users, err := lib.ListUsers()
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		for _, u := range users {
			if u.ID == user.ID && u.Bio != "Updated bio" {
				t.Error("expected stored record to reflect the update")
			}
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		lib := newTestLibrary(t)

		if err := lib.UpdateUser(models.User{ID: "ghost", Username: "Ghost"}); err != nil {
			t.Errorf("expected silent no-op, got %v", err)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("removes a regular account", func(t *testing.T) {
		lib := newTestLibrary(t)

		if err := lib.DeleteUser("u1"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		users, err := lib.ListUsers()
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		for _, u := range users {
			if u.ID == "u1" {
				t.Error("expected u1 to be removed")
			}
		}
	})

	t.Run("refuses to delete the only admin", func(t *testing.T) {
		lib := newTestLibrary(t)

		if err := lib.DeleteUser("admin1"); !errors.Is(err, shared.ErrLastAdminProtected) {
			t.Errorf("expected ErrLastAdminProtected, got %v", err)
		}
	})

	t.Run("deletes an admin when another remains", func(t *testing.T) {
		lib := newTestLibrary(t)

		second, err := lib.Register("SecondAdmin", "second@melodyview.com", "pw")
		if err != nil {
			t.Fatalf("register failed: %v", err)
		}
		second.Role = models.RoleAdmin
		if err := lib.UpdateUser(second); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		if err := lib.DeleteUser("admin1"); err != nil {
			t.Errorf("expected delete to succeed, got %v", err)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		lib := newTestLibrary(t)

		if err := lib.DeleteUser("ghost"); err != nil {
			t.Errorf("expected silent no-op, got %v", err)
		}
	})
}

func TestAddReview(t *testing.T) {
	t.Run("prepends the review", func(t *testing.T) {
		lib := newTestLibrary(t)

		if _, err := lib.Login("user@example.com", "password123"); err != nil {
			t.Fatalf("login failed: %v", err)
		}

		song := models.FeaturedSongs()[0]
		review, err := lib.AddReview(song, 5, "Still gives me chills.")
		if err != nil {
			t.Fatalf("add review failed: %v", err)
		}
		if review.Username != "MelodyFan99" {
			t.Errorf("expected author snapshot, got %q", review.Username)
		}
		if review.Date != "2024-03-01" {
			t.Errorf("expected stamped date, got %q", review.Date)
		}

		reviews, err := lib.ListReviews()
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(reviews) != 3 {
			t.Fatalf("expected 3 reviews, got %d", len(reviews))
		}
		if reviews[0].ID != review.ID {
			t.Error("expected the new review first")
		}
	})

	t.Run("requires a signed-in user", func(t *testing.T) {
		lib := newTestLibrary(t)

		if _, err := lib.AddReview(models.Song{}, 5, "nope"); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		lib := newTestLibrary(t)

		if _, err := lib.Login("user@example.com", "password123"); err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if _, err := lib.AddReview(models.Song{}, 6, "too good"); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}
