package service

import (
	"context"
	"sync"
	"time"

	"github.com/eduportal/eduportal-go/internal/model"
	"github.com/eduportal/eduportal-go/internal/repository"
)

// fakeStudentRepo is an in-memory StudentRepo that mirrors the MySQL
// repository's contract, including the unique-email behavior.
type fakeStudentRepo struct {
	mu       sync.Mutex
	seq      int64
	students map[string]*model.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[string]*model.Student)}
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *model.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.students[student.Email]; exists {
		return repository.ErrDuplicateEmail
	}

	f.seq++
	student.ID = f.seq
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt

	stored := *student
	f.students[student.Email] = &stored
	return nil
}

func (f *fakeStudentRepo) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.students[email]
	if !ok {
		return nil, repository.ErrStudentNotFound
	}
	out := *s
	return &out, nil
}

func (f *fakeStudentRepo) UpdateProfilePicture(ctx context.Context, email string, picture []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Matches the MySQL UPDATE: no affected-row check, silent when the
	// student is gone.
	if s, ok := f.students[email]; ok {
		s.ProfilePicture = append([]byte(nil), picture...)
	}
	return nil
}

func (f *fakeStudentRepo) GetProfilePicture(ctx context.Context, email string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.students[email]
	if !ok {
		return nil, repository.ErrStudentNotFound
	}
	return append([]byte(nil), s.ProfilePicture...), nil
}
