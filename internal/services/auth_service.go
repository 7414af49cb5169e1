package services

import (
	"context"
	"strings"
	"time"

	"tourism/internal/auth"
	intdb "tourism/internal/db"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/metrics"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

const (
	msgAllFieldsRequired  = "All fields are required"
	msgEmailRegistered    = "Email already registered"
	msgPasswordsMismatch  = "Passwords do not match"
	msgEmailNotFound      = "Email does not exist."
	msgIncorrectPassword  = "Incorrect password."
	msgInvalidCredentials = "Invalid credentials"
	msgCurrentIncorrect   = "Current password incorrect"
	msgNewMismatch        = "New passwords do not match"
)

// AuthService handles registration, login and profile changes for both
// principal kinds. The kind picks the credential table; nothing crosses over.
type AuthService struct {
	Store *intdb.Store
	Now   func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Register creates a principal of the given kind. Admin registration also
// requires a matching confirmation.
func (s AuthService) Register(ctx context.Context, kind domain.PrincipalKind, in models.RegisterInput) (int64, error) {
	name := utils.TrimOrEmpty(in.Name)
	email := utils.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return 0, domain.ValidationError{Msg: msgAllFieldsRequired}
	}
	if kind == domain.KindAdmin {
		if in.Confirm == "" {
			return 0, domain.ValidationError{Field: "confirm_password", Msg: msgAllFieldsRequired}
		}
		if in.Password != in.Confirm {
			return 0, domain.ValidationError{Field: "confirm_password", Msg: msgPasswordsMismatch}
		}
	}

	var id int64
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		repo := repositories.NewPrincipalRepository(q, kind)
		exists, err := repo.EmailExists(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return domain.ConflictError{Resource: string(kind), Msg: msgEmailRegistered}
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return domain.InternalError{Msg: "hash password", Err: err}
		}
		id, err = repo.Create(ctx, name, email, hash, kind.DefaultRole(), s.now())
		if intdb.IsDuplicateKey(err) {
			return domain.ConflictError{Resource: string(kind), Msg: msgEmailRegistered, Err: err}
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	metrics.Registrations.WithLabelValues(string(kind)).Inc()
	return id, nil
}

// Login verifies credentials and returns the principal with the identity to
// store in the session.
func (s AuthService) Login(ctx context.Context, kind domain.PrincipalKind, email, password string) (models.Principal, domain.Identity, error) {
	email = utils.NormalizeEmail(email)

	var p models.Principal
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		p, err = repositories.NewPrincipalRepository(q, kind).FindByEmail(ctx, email)
		return err
	})
	if err != nil {
		if domain.IsNotFound(err) {
			metrics.Logins.WithLabelValues(string(kind), "unknown_email").Inc()
			return p, domain.Identity{}, domain.UnauthorizedError{Msg: s.loginMessage(kind, msgEmailNotFound)}
		}
		return p, domain.Identity{}, err
	}
	if !auth.CheckPassword(p.PasswordHash, password) {
		metrics.Logins.WithLabelValues(string(kind), "bad_password").Inc()
		return models.Principal{}, domain.Identity{}, domain.UnauthorizedError{Msg: s.loginMessage(kind, msgIncorrectPassword)}
	}

	metrics.Logins.WithLabelValues(string(kind), "success").Inc()
	return p, domain.Identity{SubjectID: domain.ID(p.ID), Role: kind.DefaultRole()}, nil
}

// admin login never says which half of the credentials was wrong
func (s AuthService) loginMessage(kind domain.PrincipalKind, userMsg string) string {
	if kind == domain.KindAdmin {
		return msgInvalidCredentials
	}
	return userMsg
}

func (s AuthService) Profile(ctx context.Context, id domain.Identity) (models.Principal, error) {
	if !id.Authenticated() {
		return models.Principal{}, domain.UnauthorizedError{}
	}
	var p models.Principal
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		p, err = repositories.NewPrincipalRepository(q, id.Kind()).FindByID(ctx, int64(id.SubjectID))
		return err
	})
	return p, err
}

// UpdateProfile overwrites a user's editable fields. The email is stored the
// way Login looks it up, and the storage unique key still rejects an email
// that belongs to someone else.
func (s AuthService) UpdateProfile(ctx context.Context, id domain.Identity, in models.ProfileInput) error {
	if !id.IsUser() {
		return domain.UnauthorizedError{}
	}
	in.Email = utils.NormalizeEmail(in.Email)
	return s.Store.WithConn(ctx, func(q intdb.Querier) error {
		err := repositories.NewPrincipalRepository(q, domain.KindUser).UpdateProfile(ctx, int64(id.SubjectID), in)
		if intdb.IsDuplicateKey(err) {
			return domain.ConflictError{Resource: string(domain.KindUser), Msg: msgEmailRegistered, Err: err}
		}
		return err
	})
}

func (s AuthService) ChangePassword(ctx context.Context, id domain.Identity, pc models.PasswordChange) error {
	if !id.IsUser() {
		return domain.UnauthorizedError{}
	}
	return s.Store.WithConn(ctx, func(q intdb.Querier) error {
		repo := repositories.NewPrincipalRepository(q, domain.KindUser)
		p, err := repo.FindByID(ctx, int64(id.SubjectID))
		if err != nil {
			return err
		}
		if !auth.CheckPassword(p.PasswordHash, pc.Current) {
			return domain.UnauthorizedError{Msg: msgCurrentIncorrect}
		}
		if pc.New != pc.Confirm {
			return domain.ValidationError{Field: "confirm_password", Msg: msgNewMismatch}
		}
		hash, err := auth.HashPassword(pc.New)
		if err != nil {
			return domain.InternalError{Msg: "hash password", Err: err}
		}
		return repo.UpdatePassword(ctx, p.ID, hash)
	})
}

// DisplayName falls back to the email when a principal has no name.
func DisplayName(p models.Principal) string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return p.Email
}
