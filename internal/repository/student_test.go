package repository

import (
	"errors"
	"testing"
)

func TestNewStudentRepository(t *testing.T) {
	repo := NewStudentRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil StudentRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrStudentNotFound.Error() != "student not found" {
		t.Fatalf("unexpected error message: %s", ErrStudentNotFound.Error())
	}
	if ErrDuplicateEmail.Error() != "email already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateEmail.Error())
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Fatal("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrStudentNotFound) {
		t.Fatal("ErrStudentNotFound should not be a duplicate entry error")
	}
	if !isDuplicateEntryError(errors.New("Error 1062 (23000): Duplicate entry 'ada@x.com' for key 'uq_students_email'")) {
		t.Fatal("MySQL 1062 error should be classified as duplicate entry")
	}
}
