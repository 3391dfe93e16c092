package service

import (
	"context"
	"errors"

	"github.com/eduportal/eduportal-go/internal/repository"
)

var (
	ErrNoImage         = errors.New("no image uploaded")
	ErrPictureNotFound = errors.New("image not found")
)

// ProfileService handles profile picture upload and retrieval.
type ProfileService struct {
	repo StudentRepo
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo StudentRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

// UploadPicture replaces the stored picture for the given identity.
// The previous blob is overwritten entirely.
func (s *ProfileService) UploadPicture(ctx context.Context, email string, data []byte) error {
	if len(data) == 0 {
		return ErrNoImage
	}
	return s.repo.UpdateProfilePicture(ctx, email, data)
}

// GetPicture returns the stored picture bytes for the given identity.
// Absent blobs and unknown students both yield ErrPictureNotFound.
func (s *ProfileService) GetPicture(ctx context.Context, email string) ([]byte, error) {
	data, err := s.repo.GetProfilePicture(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, ErrPictureNotFound
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrPictureNotFound
	}
	return data, nil
}
