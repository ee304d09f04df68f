// Package store holds the tracker's five entity collections in memory.
//
// The store is append-only: entities are never updated or deleted, and an
// append never fails. Foreign keys are not checked on write; a dangling
// reference only shows up later as a lookup that reports not found.
package store

import (
	"slices"
	"sync"

	"conesites/cmd/internal/domain/entity"
)

// Seed holds the collections a store starts with, usually loaded from fixtures.
type Seed struct {
	Clients       []entity.Client
	Projects      []entity.Project
	Collaborators []entity.Collaborator
	Sites         []entity.Site
	Candidates    []entity.Candidate
}

// Store is created once per application session and handed to whoever needs it.
// It is safe for concurrent use; every read observes all previous appends.
type Store struct {
	mu sync.RWMutex

	clients       []entity.Client
	projects      []entity.Project
	collaborators []entity.Collaborator
	sites         []entity.Site
	candidates    []entity.Candidate

	// Position of the first element inserted with a given identity.
	clientIdx       map[string]int
	projectIdx      map[string]int
	collaboratorIdx map[string]int
	siteIdx         map[string]int
	candidateIdx    map[string]int

	// Candidate positions grouped by SiteID, in insertion order.
	candidatesBySite map[string][]int
}

func New(seed Seed) *Store {
	s := &Store{
		clientIdx:        make(map[string]int),
		projectIdx:       make(map[string]int),
		collaboratorIdx:  make(map[string]int),
		siteIdx:          make(map[string]int),
		candidateIdx:     make(map[string]int),
		candidatesBySite: make(map[string][]int),
	}

	for _, c := range seed.Clients {
		s.appendClient(c)
	}
	for _, p := range seed.Projects {
		s.appendProject(p)
	}
	for _, col := range seed.Collaborators {
		s.appendCollaborator(col)
	}
	for _, site := range seed.Sites {
		s.appendSite(site)
	}
	for _, cand := range seed.Candidates {
		s.appendCandidate(cand)
	}
	return s
}

func (s *Store) AddClient(c entity.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendClient(c)
}

func (s *Store) AddProject(p entity.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendProject(p)
}

func (s *Store) AddCollaborator(col entity.Collaborator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendCollaborator(col)
}

func (s *Store) AddSite(site entity.Site) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendSite(site)
}

func (s *Store) AddCandidate(cand entity.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendCandidate(cand)
}

// Clients returns a copy of the clients collection in insertion order.
func (s *Store) Clients() []entity.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.clients)
}

func (s *Store) Projects() []entity.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projects)
}

func (s *Store) Collaborators() []entity.Collaborator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.collaborators)
}

func (s *Store) Sites() []entity.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sites)
}

func (s *Store) Candidates() []entity.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.candidates)
}

func (s *Store) appendClient(c entity.Client) {
	indexFirst(s.clientIdx, c.ID, len(s.clients))
	s.clients = append(s.clients, c)
}

func (s *Store) appendProject(p entity.Project) {
	indexFirst(s.projectIdx, p.ID, len(s.projects))
	s.projects = append(s.projects, p)
}

func (s *Store) appendCollaborator(col entity.Collaborator) {
	indexFirst(s.collaboratorIdx, col.ID, len(s.collaborators))
	s.collaborators = append(s.collaborators, col)
}

func (s *Store) appendSite(site entity.Site) {
	indexFirst(s.siteIdx, site.SharingID, len(s.sites))
	s.sites = append(s.sites, site)
}

func (s *Store) appendCandidate(cand entity.Candidate) {
	pos := len(s.candidates)
	indexFirst(s.candidateIdx, cand.ID, pos)
	s.candidatesBySite[cand.SiteID] = append(s.candidatesBySite[cand.SiteID], pos)
	s.candidates = append(s.candidates, cand)
}

// indexFirst keeps the earliest position for duplicated identities, so lookups
// behave like a front-to-back scan.
func indexFirst(idx map[string]int, id string, pos int) {
	if _, ok := idx[id]; !ok {
		idx[id] = pos
	}
}
