package dto

import (
	"errors"
	"strings"

	"github.com/BloggingApp/blog-service/internal/model"
)

var (
	ErrMissingTitle    = errors.New("title is required")
	ErrMissingSections = errors.New("at least one section is required")
	ErrInvalidSection  = errors.New("section must have a known kind and non-empty content")
)

// SavePostRequest is the body of both create and update submissions: the
// title and sections always replace the stored ones wholesale.
type SavePostRequest struct {
	Title    string          `json:"title"`
	Sections []model.Section `json:"sections"`
}

// Validate checks the submission structurally. The first failing field
// aborts the whole submission; nothing is partially accepted.
func (r SavePostRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrMissingTitle
	}
	if len(r.Sections) == 0 {
		return ErrMissingSections
	}
	for _, section := range r.Sections {
		if !section.Kind.Valid() || strings.TrimSpace(section.Content) == "" {
			return ErrInvalidSection
		}
	}
	return nil
}
