package service

import (
	"context"
	"errors"

	"github.com/eduportal/eduportal-go/internal/crypto"
	"github.com/eduportal/eduportal-go/internal/model"
	"github.com/eduportal/eduportal-go/internal/repository"
)

var (
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrStudentNotFound    = errors.New("student not found")
)

// StudentRepo is the persistence surface the services need.
type StudentRepo interface {
	Create(ctx context.Context, student *model.Student) error
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	UpdateProfilePicture(ctx context.Context, email string, picture []byte) error
	GetProfilePicture(ctx context.Context, email string) ([]byte, error)
}

// AuthService handles signup, login and profile lookups.
type AuthService struct {
	repo StudentRepo
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo StudentRepo) *AuthService {
	return &AuthService{repo: repo}
}

// Signup creates a new student account. The existence check is an
// early exit only; the unique key on email is what actually holds the
// invariant, so a concurrent duplicate insert still surfaces as
// ErrEmailTaken rather than a server error.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.StudentResponse, error) {
	if req.Name == "" {
		return model.StudentResponse{}, ErrNameRequired
	}
	if req.Email == "" {
		return model.StudentResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.StudentResponse{}, ErrPasswordRequired
	}

	_, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return model.StudentResponse{}, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrStudentNotFound) {
		return model.StudentResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.StudentResponse{}, err
	}

	student := &model.Student{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.StudentResponse{}, ErrEmailTaken
		}
		return model.StudentResponse{}, err
	}

	return model.StudentResponse{
		ID:        student.ID,
		Name:      student.Name,
		Email:     student.Email,
		CreatedAt: student.CreatedAt,
	}, nil
}

// Login verifies a claimed credential pair. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.StudentResponse, error) {
	if req.Email == "" {
		return model.StudentResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.StudentResponse{}, ErrPasswordRequired
	}

	student, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return model.StudentResponse{}, ErrInvalidCredentials
		}
		return model.StudentResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, student.PasswordHash)
	if err != nil {
		return model.StudentResponse{}, err
	}
	if !match {
		return model.StudentResponse{}, ErrInvalidCredentials
	}

	return model.StudentResponse{
		ID:        student.ID,
		Name:      student.Name,
		Email:     student.Email,
		CreatedAt: student.CreatedAt,
	}, nil
}

// Profile retrieves the student bound to a session identity. A stale
// session referencing a deleted account yields ErrStudentNotFound.
func (s *AuthService) Profile(ctx context.Context, email string) (model.StudentResponse, error) {
	student, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return model.StudentResponse{}, ErrStudentNotFound
		}
		return model.StudentResponse{}, err
	}

	return model.StudentResponse{
		ID:        student.ID,
		Name:      student.Name,
		Email:     student.Email,
		CreatedAt: student.CreatedAt,
	}, nil
}
