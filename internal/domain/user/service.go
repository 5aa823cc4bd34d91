package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthorized      = errors.New("identity is not authorized to administer")
)

// Provisioner is the capability boundary around lazy admin creation: the
// fixed administrative identity is created on first use and the role grant
// is an idempotent upsert. Nothing else creates accounts.
type Provisioner struct {
	repo Repository
}

func NewProvisioner(repo Repository) *Provisioner {
	return &Provisioner{repo: repo}
}

// EnsureAdmin makes sure the identity exists and holds the admin role. An
// existing account keeps its credential; the presented password only seeds
// the very first creation.
func (p *Provisioner) EnsureAdmin(ctx context.Context, email, password string) (*User, error) {
	u, err := p.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, hashErr
		}
		u = &User{Email: email, PasswordHash: string(hash)}
		if err := p.repo.Create(ctx, u); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	hasRole, err := p.repo.HasRole(ctx, u.ID, RoleAdmin)
	if err != nil {
		return nil, err
	}
	if !hasRole {
		if err := p.repo.GrantRole(ctx, u.ID, RoleAdmin); err != nil {
			return nil, err
		}
	}
	return u, nil
}

type Service struct {
	repo        Repository
	provisioner *Provisioner
	adminEmail  string
}

func NewService(repo Repository, provisioner *Provisioner, adminEmail string) *Service {
	return &Service{
		repo:        repo,
		provisioner: provisioner,
		adminEmail:  adminEmail,
	}
}

// IsRecognizedAdmin is the pure gate applied before any store or identity
// work: only the configured administrative email may proceed.
func (s *Service) IsRecognizedAdmin(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), s.adminEmail)
}

// Login authenticates the administrative identity. The recognized email is
// lazily provisioned, then the presented password is verified against the
// stored hash and the admin role is checked against the roles table.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	if !s.IsRecognizedAdmin(email) {
		return nil, ErrNotAuthorized
	}

	u, err := s.provisioner.EnsureAdmin(ctx, s.adminEmail, password)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	hasRole, err := s.repo.HasRole(ctx, u.ID, RoleAdmin)
	if err != nil {
		return nil, err
	}
	if !hasRole {
		return nil, ErrNotAuthorized
	}
	return u, nil
}
