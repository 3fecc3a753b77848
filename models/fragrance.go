package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type Fragrance struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Variant     *string  `json:"variant"`
	Description string   `json:"description"`
	Mythology   *string  `json:"mythology"`
	TopNotes    []string `json:"top_notes"`
	HeartNotes  []string `json:"heart_notes"`
	BaseNotes   []string `json:"base_notes"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	VolumeML    int      `json:"volume_ml"`
	ColorHex    *string  `json:"color_hex"`
	SKU         *string  `json:"sku"`
	Images      []string `json:"images"`
	SplineURL   *string  `json:"spline_url"`
	InStock     bool     `json:"in_stock"`
}

// NewFragrance returns a fragrance carrying the defaults applied to fields a
// stored document leaves out.
func NewFragrance() Fragrance {
	return Fragrance{
		TopNotes:   []string{},
		HeartNotes: []string{},
		BaseNotes:  []string{},
		Currency:   DefaultCurrency,
		VolumeML:   50,
		Images:     []string{},
		InStock:    true,
	}
}

func (f *Fragrance) Normalize() {
	if f.TopNotes == nil {
		f.TopNotes = []string{}
	}
	if f.HeartNotes == nil {
		f.HeartNotes = []string{}
	}
	if f.BaseNotes == nil {
		f.BaseNotes = []string{}
	}
	if f.Images == nil {
		f.Images = []string{}
	}
	if f.Currency == "" {
		f.Currency = DefaultCurrency
	}
}

func (f *Fragrance) Validate() error {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return errors.New("fragrance: name is required")
	case strings.TrimSpace(f.Slug) == "":
		return errors.New("fragrance: slug is required")
	case strings.TrimSpace(f.Description) == "":
		return fmt.Errorf("fragrance %s: description is required", f.Slug)
	case f.Price < 0:
		return fmt.Errorf("fragrance %s: price must be >= 0", f.Slug)
	case f.VolumeML < 1:
		return fmt.Errorf("fragrance %s: volume_ml must be >= 1", f.Slug)
	}

	if f.SplineURL != nil {
		u, err := url.ParseRequestURI(*f.SplineURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("fragrance %s: spline_url is not a valid http(s) URL", f.Slug)
		}
	}
	return nil
}
