package store

import "conesites/cmd/internal/domain/entity"

// NotApplicable names the placeholder bucket returned when no selected
// candidate exists, so a pie chart still has something to draw.
const NotApplicable = "N/A"

type StatusBucket struct {
	Status   entity.SiteStatus
	Name     string
	FullName string
	Count    int
}

type TypeBucket struct {
	Type  entity.SiteType // empty for the N/A bucket
	Name  string
	Value int
}

type Totals struct {
	Sites                int
	InNegotiation        int
	InLicensing          int
	ReadyForConstruction int
}

// StatusCounts returns one bucket per known site status, in lifecycle order,
// zero counts included.
func (s *Store) StatusCounts() []StatusBucket {
	s.mu.RLock()
	counts := make(map[entity.SiteStatus]int, len(entity.SiteStatuses))
	for i := range s.sites {
		counts[s.sites[i].Status]++
	}
	s.mu.RUnlock()

	buckets := make([]StatusBucket, len(entity.SiteStatuses))
	for i, status := range entity.SiteStatuses {
		buckets[i] = StatusBucket{
			Status:   status,
			Name:     status.ShortLabel(),
			FullName: status.Label(),
			Count:    counts[status],
		}
	}
	return buckets
}

// SelectedTypeCounts counts selected candidates per site type, dropping empty
// types. When nothing is selected it returns a single {N/A, 1} bucket.
func (s *Store) SelectedTypeCounts() []TypeBucket {
	s.mu.RLock()
	counts := make(map[entity.SiteType]int, len(entity.SiteTypes))
	for i := range s.candidates {
		if s.candidates[i].IsSelected {
			counts[s.candidates[i].SiteType]++
		}
	}
	s.mu.RUnlock()

	buckets := make([]TypeBucket, 0, len(entity.SiteTypes))
	for _, t := range entity.SiteTypes {
		if n := counts[t]; n > 0 {
			buckets = append(buckets, TypeBucket{Type: t, Name: t.ShortLabel(), Value: n})
		}
	}

	if len(buckets) == 0 {
		buckets = append(buckets, TypeBucket{Name: NotApplicable, Value: 1})
	}
	return buckets
}

// Totals feeds the dashboard KPI cards.
func (s *Store) Totals() Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := Totals{Sites: len(s.sites)}
	for i := range s.sites {
		switch s.sites[i].Status {
		case entity.SiteStatusNegotiation:
			t.InNegotiation++
		case entity.SiteStatusLicensing:
			t.InLicensing++
		case entity.SiteStatusReadyForConstruction:
			t.ReadyForConstruction++
		}
	}
	return t
}
