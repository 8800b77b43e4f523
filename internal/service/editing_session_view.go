// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"

	"github.com/MKhiriev/go-strings-editor/models"
)

// SetFilter restricts Rows to entries whose key or value contains text,
// ignoring case. A nil or empty text clears the filter. Pending state is
// never touched.
func (s *EditingSession) SetFilter(text *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if text == nil || *text == "" {
		s.filter = nil
		return
	}

	needle := *text
	s.filter = &needle
}

// Filter returns the active filter text.
func (s *EditingSession) Filter() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filter == nil {
		return "", false
	}
	return *s.filter, true
}

// Rows yields the row index and effective entry of every baseline row that
// matches the filter. The sequence is computed from the state at the time
// iteration starts and can be ranged over any number of times.
func (s *EditingSession) Rows() iter.Seq2[int, models.Entry] {
	return func(yield func(int, models.Entry) bool) {
		s.mu.Lock()
		rows := make([]models.Entry, len(s.baseline))
		for row := range s.baseline {
			rows[row] = s.effectiveLocked(row)
		}
		var needle string
		filtered := s.filter != nil
		if filtered {
			needle = *s.filter
		}
		s.mu.Unlock()

		fold := cases.Fold()
		needle = fold.String(needle)

		for row, e := range rows {
			if filtered && !matches(fold, e, needle) {
				continue
			}
			if !yield(row, e) {
				return
			}
		}
	}
}

func matches(fold cases.Caser, e models.Entry, needle string) bool {
	return strings.Contains(fold.String(e.Key), needle) ||
		strings.Contains(fold.String(e.Value), needle)
}
