package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// ErrValidation is matched by every ValidationError via errors.Is.
var ErrValidation = errors.New("validation error")

// ValidationError carries the message shown to the user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

var (
	ErrEmptyTitle          = &ValidationError{Msg: "Title cannot be empty or contain only whitespace"}
	ErrTitleTooLong        = &ValidationError{Msg: "Title must be 200 characters or less"}
	ErrDescriptionTooLong  = &ValidationError{Msg: "Description must be 1000 characters or less"}
	ErrInvalidID           = &ValidationError{Msg: "Task ID must be a positive integer"}
	ErrTitleEncoding       = &ValidationError{Msg: "Title must be valid UTF-8"}
	ErrDescriptionEncoding = &ValidationError{Msg: "Description must be valid UTF-8"}
)

type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskPatch is a partial update. A nil field means "leave unchanged".
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// New validates and builds a Task. The title is stored as given; trimming
// is up to the repository.
func New(id int64, title, description string, completed bool) (Task, error) {
	if err := ValidateTitle(title); err != nil {
		return Task{}, err
	}
	if err := ValidateDescription(description); err != nil {
		return Task{}, err
	}
	if err := ValidateID(id); err != nil {
		return Task{}, err
	}
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
	}, nil
}

// Apply returns a copy of t with the patch applied. Every provided field is
// validated before anything is changed, so a failed patch leaves t as it was.
func (t Task) Apply(p TaskPatch) (Task, error) {
	if err := p.Validate(); err != nil {
		return t, err
	}
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t, nil
}

func (p TaskPatch) Validate() error {
	if p.Title != nil {
		if err := ValidateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := ValidateDescription(*p.Description); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTitle checks the raw title: non-empty after trimming, valid UTF-8
// and at most MaxTitleLength characters before trimming.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if !utf8.ValidString(title) {
		return ErrTitleEncoding
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func ValidateDescription(description string) error {
	if !utf8.ValidString(description) {
		return ErrDescriptionEncoding
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func ValidateID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}
