package main

import (
	"context"
	"fmt"

	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/urfave/cli/v3"
)

// AccountRegister creates a new account and signs it in.
func (r *Runner) AccountRegister(ctx context.Context, cmd *cli.Command) error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}

	user, err := r.library.Register(cmd.String("username"), cmd.String("email"), cmd.String("password"))
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	r.writePlainln("✓ Registered and signed in as %s", user.Username)
	return nil
}

// AccountLogin signs in with email and password.
func (r *Runner) AccountLogin(ctx context.Context, cmd *cli.Command) error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}

	user, err := r.library.Login(cmd.String("email"), cmd.String("password"))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	r.writePlainln("✓ Signed in as %s", user.Username)
	return nil
}

// AccountLogout ends the current session.
func (r *Runner) AccountLogout(ctx context.Context, cmd *cli.Command) error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}

	if err := r.library.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	r.writePlainln("✓ Signed out")
	return nil
}

// AccountWhoami prints the signed-in account.
func (r *Runner) AccountWhoami(ctx context.Context, cmd *cli.Command) error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}

	user := r.library.CurrentUser()
	if user == nil {
		r.writePlainln("Not signed in")
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}

	r.writePlainHeader(user.Username)
	r.writePlain("ID:    %s\n", user.ID)
	r.writePlain("Email: %s\n", user.Email)
	r.writePlain("Role:  %s\n", user.Role)
	if user.Bio != "" {
		r.writePlain("Bio:   %s\n", user.Bio)
	}
	return nil
}

// AccountUpdate applies profile changes to the signed-in account.
func (r *Runner) AccountUpdate(ctx context.Context, cmd *cli.Command) error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}

	user := r.library.CurrentUser()
	if user == nil {
		return shared.ErrNotAuthenticated
	}

	updated := *user
	if v := cmd.String("username"); v != "" {
		updated.Username = v
	}
	if v := cmd.String("bio"); v != "" {
		updated.Bio = v
	}
	if v := cmd.String("avatar"); v != "" {
		updated.AvatarURL = v
	}

	if err := r.library.UpdateUser(updated); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	r.writePlainln("✓ Profile updated")
	return nil
}

// AdminUsers lists all registered accounts.
func (r *Runner) AdminUsers(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAdmin(); err != nil {
		return err
	}

	users, err := r.library.ListUsers()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(users, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Users (%d)", len(users)))
	for _, u := range users {
		role := ""
		if u.IsAdmin() {
			role = " [admin]"
		}
		r.writePlain("%s  %s <%s>%s\n", u.ID, u.Username, u.Email, role)
	}
	return nil
}

// AdminDeleteUser deletes an account by ID.
func (r *Runner) AdminDeleteUser(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAdmin(); err != nil {
		return err
	}

	userID := cmd.StringArg("id")
	if userID == "" {
		return fmt.Errorf("%w: user ID", shared.ErrMissingArgument)
	}

	if err := r.library.DeleteUser(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	r.writePlainln("✓ Deleted user %s", userID)
	return nil
}

// requireAdmin checks that the signed-in account holds the admin role.
func (r *Runner) requireAdmin() error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}

	user := r.library.CurrentUser()
	if user == nil {
		return shared.ErrNotAuthenticated
	}
	if !user.IsAdmin() {
		return shared.ErrNotAuthorized
	}
	return nil
}
