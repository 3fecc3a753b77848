package models

import (
	"errors"
	"strings"
)

type Testimonial struct {
	Author string   `json:"author"`
	Quote  string   `json:"quote"`
	Source *string  `json:"source"`
	Rating *float64 `json:"rating"`
}

func (t *Testimonial) Validate() error {
	if strings.TrimSpace(t.Author) == "" {
		return errors.New("testimonial: author is required")
	}
	if strings.TrimSpace(t.Quote) == "" {
		return errors.New("testimonial: quote is required")
	}
	if t.Rating != nil && (*t.Rating < 0 || *t.Rating > 5) {
		return errors.New("testimonial: rating must be between 0 and 5")
	}
	return nil
}
