package model

import (
	"time"

	"github.com/google/uuid"
)

type SectionKind string

const (
	SectionText    SectionKind = "text"
	SectionCode    SectionKind = "code"
	SectionHeading SectionKind = "heading"
	SectionImage   SectionKind = "image"
)

// Valid reports whether k is one of the recognized section kinds.
func (k SectionKind) Valid() bool {
	switch k {
	case SectionText, SectionCode, SectionHeading, SectionImage:
		return true
	}
	return false
}

// Section is one typed block of a post body. For SectionImage the content is
// an image URL.
type Section struct {
	Kind    SectionKind `json:"kind"`
	Content string      `json:"content"`
}

type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Sections  []Section `json:"sections"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}
