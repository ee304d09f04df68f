package store

import (
	"strings"

	"conesites/cmd/internal/domain/entity"
	"golang.org/x/text/cases"
)

// StatusAll disables the status filter of a SiteFilter.
const StatusAll = "all"

type SiteFilter struct {
	// Term is matched case-insensitively as a substring of the sharing name,
	// the sharing id or the city. Empty matches everything.
	Term string

	// Status is an exact SiteStatus value, StatusAll or empty.
	Status string
}

func (f SiteFilter) matchesStatus(site *entity.Site) bool {
	return f.Status == "" || f.Status == StatusAll || string(site.Status) == f.Status
}

// SearchSites filters the current sites, keeping insertion order.
func (s *Store) SearchSites(f SiteFilter) []entity.Site {
	// Casers keep state between calls and must not be shared across goroutines.
	fold := cases.Fold()
	term := fold.String(f.Term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Site, 0)
	for i := range s.sites {
		site := &s.sites[i]
		if !f.matchesStatus(site) {
			continue
		}
		if strings.Contains(fold.String(site.SharingName), term) ||
			strings.Contains(fold.String(site.SharingID), term) ||
			strings.Contains(fold.String(site.City), term) {
			out = append(out, *site)
		}
	}
	return out
}
