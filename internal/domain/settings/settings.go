package settings

import (
	"context"

	"award-voting/internal/platform/apperr"
)

// KeyVotingActive is the single settings row voters read on every load.
const KeyVotingActive = "voting_active"

type Repository interface {
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// VotingActive reads the session flag. It is fetched once per page load and
// passed down explicitly; nothing holds it as process state.
func (s *Service) VotingActive(ctx context.Context) (bool, error) {
	v, err := s.repo.GetBool(ctx, KeyVotingActive)
	if err != nil {
		return false, apperr.Unavailable("store_unavailable", "could not read voting status", err)
	}
	return v, nil
}

func (s *Service) SetVotingActive(ctx context.Context, active bool) error {
	if err := s.repo.SetBool(ctx, KeyVotingActive, active); err != nil {
		return apperr.Unavailable("store_unavailable", "could not update voting status", err)
	}
	return nil
}
