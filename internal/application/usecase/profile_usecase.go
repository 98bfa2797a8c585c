// internal/application/usecase/profile_usecase.go
package usecase

import (
	"context"
	"strings"

	profdom "texia/internal/domain/profile"
)

// ProfileRepository is the persistence contract for operator profiles.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (profdom.Profile, error)
	Save(ctx context.Context, p profdom.Profile) error
}

type ProfileUsecase struct {
	repo ProfileRepository
}

func NewProfileUsecase(repo ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{repo: repo}
}

// Get returns the stored profile. A missing document yields
// profile.ErrNotFound; the handler decides how to render that.
func (uc *ProfileUsecase) Get(ctx context.Context, userID string) (profdom.Profile, error) {
	return uc.repo.Get(ctx, userID)
}

// Save validates and merge-writes the profile. Fields absent from p
// keep their stored values (merge semantics, not replace).
func (uc *ProfileUsecase) Save(ctx context.Context, p profdom.Profile) error {
	p.UserID = strings.TrimSpace(p.UserID)
	if err := p.Validate(); err != nil {
		return err
	}
	return uc.repo.Save(ctx, p)
}
