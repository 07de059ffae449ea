package resume

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when an owner has no stored profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// Repository is the persistence port for stored profiles.
type Repository interface {
	GetProfile(ctx context.Context, ownerID uuid.UUID) (ResumeData, error)
	SaveProfile(ctx context.Context, ownerID uuid.UUID, data ResumeData) error
}

// ProfileUseCase exposes the profile read/write scenario.
type ProfileUseCase interface {
	Get(ctx context.Context, ownerID uuid.UUID) (ResumeData, error)
	Save(ctx context.Context, ownerID uuid.UUID, data ResumeData) error
}

type profileService struct {
	repo Repository
}

// NewProfileService returns the default ProfileUseCase implementation.
func NewProfileService(repo Repository) ProfileUseCase {
	return &profileService{repo: repo}
}

// Get loads the owner's profile; a missing profile yields the defaults so
// the editor always has something to render.
func (s *profileService) Get(ctx context.Context, ownerID uuid.UUID) (ResumeData, error) {
	data, err := s.repo.GetProfile(ctx, ownerID)
	if errors.Is(err, ErrProfileNotFound) {
		return DefaultResumeData(), nil
	}
	if err != nil {
		return ResumeData{}, err
	}
	return data, nil
}

func (s *profileService) Save(ctx context.Context, ownerID uuid.UUID, data ResumeData) error {
	if err := ValidateIDs(data); err != nil {
		return err
	}
	return s.repo.SaveProfile(ctx, ownerID, data)
}
