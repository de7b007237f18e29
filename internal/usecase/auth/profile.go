package auth

import (
	"context"
	"strings"

	"alumni-portal/internal/domain/user"
	"alumni-portal/internal/notify"
	"alumni-portal/internal/usecase"
)

type ProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

// UpdateOwnProfile merges the editable identity fields into the current
// account, wherever its record lives.
func (s *Service) UpdateOwnProfile(ctx context.Context, in ProfileInput) error {
	ve := usecase.NewValidationError()
	if strings.TrimSpace(in.FirstName) == "" {
		ve.Add("firstName", "First name is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		ve.Add("lastName", "Last name is required")
	}
	if !usecase.ValidEmail(in.Email) {
		ve.Add("email", "Email is invalid")
	}
	if err := ve.ErrOrNil(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return ErrNotAuthenticated
	}
	acct := s.session.Account
	s.mu.Unlock()

	if err := s.clk.Sleep(ctx, s.delays.Profile); err != nil {
		return err
	}

	id := acct.Identity().ID
	switch acct.Role {
	case user.RoleAdmin:
		admin := s.stores.Admin.Get()
		admin.FirstName = strings.TrimSpace(in.FirstName)
		admin.LastName = strings.TrimSpace(in.LastName)
		admin.Email = strings.TrimSpace(in.Email)
		s.stores.Admin.Update(admin)
		acct = user.AdminAccount(s.stores.Admin.Get())
	case user.RoleAlumnus:
		rec, ok := s.stores.Alumni.Get(id)
		if !ok {
			return ErrNotAuthenticated
		}
		rec.FirstName = strings.TrimSpace(in.FirstName)
		rec.LastName = strings.TrimSpace(in.LastName)
		rec.Email = strings.TrimSpace(in.Email)
		s.stores.Alumni.Update(rec)
		acct = user.AlumnusAccount(rec)
	case user.RoleStudent:
		u, ok := s.stores.Students.Get(id)
		if !ok {
			return ErrNotAuthenticated
		}
		u.FirstName = strings.TrimSpace(in.FirstName)
		u.LastName = strings.TrimSpace(in.LastName)
		u.Email = strings.TrimSpace(in.Email)
		s.stores.Students.Update(u)
		acct = user.StudentAccount(u)
	}

	s.mu.Lock()
	if s.session != nil {
		s.session.Account = acct
	}
	s.mu.Unlock()

	s.center.Push(notify.KindSuccess, "Profile updated successfully!")
	s.log.CommandLog("update_profile", id, nil)
	return nil
}

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// ChangePassword validates and stores a new hash after the usual simulated
// delay. The current password is collected but never verified; see the
// package comment.
func (s *Service) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	ve := usecase.NewValidationError()
	if in.NewPassword != in.ConfirmPassword {
		ve.Add("confirmPassword", "New passwords do not match.")
	}
	if len(in.NewPassword) < 8 {
		ve.Add("newPassword", "Password must be at least 8 characters long.")
	}
	if err := ve.ErrOrNil(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return ErrNotAuthenticated
	}
	id := s.session.Account.Identity().ID
	s.mu.Unlock()

	if err := s.clk.Sleep(ctx, s.delays.Password); err != nil {
		return err
	}

	s.storeCredential(id, in.NewPassword)
	s.center.Push(notify.KindSuccess, "Password changed successfully!")
	s.log.CommandLog("change_password", id, nil)
	return nil
}
