package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/eduportal/eduportal-go/internal/model"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrDuplicateEmail  = errors.New("email already exists")
)

// StudentRepository handles student persistence operations.
type StudentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student and sets the generated ID on the struct.
// A concurrent insert for the same email loses against the unique key
// and surfaces as ErrDuplicateEmail.
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `INSERT INTO students (name, email, password_hash) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, student.Name, student.Email, student.PasswordHash)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	student.ID = id
	return nil
}

// GetByEmail retrieves a student by their email address.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	query := `SELECT id, name, email, password_hash, created_at, updated_at FROM students WHERE email = ?`

	student := &model.Student{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&student.ID, &student.Name, &student.Email, &student.PasswordHash,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	return student, nil
}

// UpdateProfilePicture replaces the stored picture for the given email.
// Full replace, no history. Affected-row counts are not checked: MySQL
// reports zero rows when the new blob equals the old one.
func (r *StudentRepository) UpdateProfilePicture(ctx context.Context, email string, picture []byte) error {
	query := `UPDATE students SET profile_picture = ? WHERE email = ?`

	_, err := r.db.ExecContext(ctx, query, picture, email)
	return err
}

// GetProfilePicture retrieves the stored picture for the given email.
// A student with no uploaded picture yields a nil slice, not an error.
func (r *StudentRepository) GetProfilePicture(ctx context.Context, email string) ([]byte, error) {
	query := `SELECT profile_picture FROM students WHERE email = ?`

	var picture []byte
	err := r.db.QueryRowContext(ctx, query, email).Scan(&picture)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	return picture, nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
