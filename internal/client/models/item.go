package models

import "strings"

// ClosetItem is a single clothing item as served by the items endpoints.
// The client only reads and deletes items; all fields are server-owned.
type ClosetItem struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Slot         string   `json:"slot"`
	ColorPrimary string   `json:"color_primary"`
	ImageURL     string   `json:"image_url"`
	Pattern      string   `json:"pattern,omitempty"`
	Material     string   `json:"material,omitempty"`
	Fit          string   `json:"fit,omitempty"`
	Formality    string   `json:"formality,omitempty"`
	Season       []string `json:"season,omitempty"`
	Features     []string `json:"features,omitempty"`
}

// detailSep separates the attribute fragments of a card's detail line.
const detailSep = " • "

// Details assembles the hover-detail string for an item card: only
// attributes that carry information are included. Pattern is skipped when
// solid or unknown, material when unknown, fit when regular or unknown,
// formality when casual or unknown; season and feature lists are included
// when non-empty.
func (c ClosetItem) Details() string {
	var parts []string

	if c.Pattern != "" && c.Pattern != "solid" && c.Pattern != "unknown" {
		parts = append(parts, c.Pattern)
	}
	if c.Material != "" && c.Material != "unknown" {
		parts = append(parts, c.Material)
	}
	if c.Fit != "" && c.Fit != "regular" && c.Fit != "unknown" {
		parts = append(parts, c.Fit)
	}
	if c.Formality != "" && c.Formality != "casual" && c.Formality != "unknown" {
		parts = append(parts, c.Formality)
	}
	if len(c.Season) > 0 {
		parts = append(parts, strings.Join(c.Season, "/"))
	}
	if len(c.Features) > 0 {
		parts = append(parts, strings.Join(c.Features, ", "))
	}

	return strings.Join(parts, detailSep)
}
