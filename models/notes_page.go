// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

const (
	// NotesPerPage is the fixed listing page size.
	NotesPerPage = 20
	// MaxPage is the last page whose offset fits in an int.
	MaxPage = math.MaxInt / NotesPerPage
)

// AgeFilter restricts a listing by creation recency or archive state.
type AgeFilter string

const (
	AgeAllTime     AgeFilter = "alltime"
	AgeArchive     AgeFilter = "archive"
	AgeOneMonth    AgeFilter = "1month"
	AgeThreeMonths AgeFilter = "3months"
)

// ParseAgeFilter maps a raw query value to an AgeFilter. Unknown and empty
// values fall back to [AgeAllTime].
func ParseAgeFilter(raw string) AgeFilter {
	switch f := AgeFilter(raw); f {
	case AgeAllTime, AgeArchive, AgeOneMonth, AgeThreeMonths:
		return f
	default:
		return AgeAllTime
	}
}

// Since returns the lower bound on created_at for f relative to now, and
// false when f imposes no date restriction.
func (f AgeFilter) Since(now time.Time) (time.Time, bool) {
	switch f {
	case AgeOneMonth:
		return now.AddDate(0, -1, 0), true
	case AgeThreeMonths:
		return now.AddDate(0, -3, 0), true
	default:
		return time.Time{}, false
	}
}

// ArchivedOnly reports whether f restricts the listing to archived notes.
func (f AgeFilter) ArchivedOnly() bool {
	return f == AgeArchive
}

// NotesQuery describes one page of a user's note listing.
type NotesQuery struct {
	UserID int64
	Page   int
	Age    AgeFilter
	Search string
}

// Offset returns the number of rows preceding the requested page. Pages
// past [MaxPage] are treated as MaxPage, which is always empty.
func (q NotesQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (min(q.Page, MaxPage) - 1) * NotesPerPage
}

// Pagination is the listing metadata returned alongside a page.
type Pagination struct {
	PerPage     int `json:"perPage"`
	CurrentPage int `json:"currentPage"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// NotesPage is one page of notes.
type NotesPage struct {
	Data       []Note     `json:"data"`
	HasMore    bool       `json:"hasMore"`
	Pagination Pagination `json:"pagination"`
}
