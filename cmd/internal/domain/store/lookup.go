package store

import "conesites/cmd/internal/domain/entity"

func (s *Store) ClientByID(id string) (entity.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos, ok := s.clientIdx[id]; ok {
		return s.clients[pos], true
	}
	return entity.Client{}, false
}

func (s *Store) ProjectByID(id string) (entity.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos, ok := s.projectIdx[id]; ok {
		return s.projects[pos], true
	}
	return entity.Project{}, false
}

func (s *Store) CollaboratorByID(id string) (entity.Collaborator, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos, ok := s.collaboratorIdx[id]; ok {
		return s.collaborators[pos], true
	}
	return entity.Collaborator{}, false
}

// SiteByID looks a site up by its sharing id.
func (s *Store) SiteByID(sharingID string) (entity.Site, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos, ok := s.siteIdx[sharingID]; ok {
		return s.sites[pos], true
	}
	return entity.Site{}, false
}

func (s *Store) CandidateByID(id string) (entity.Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos, ok := s.candidateIdx[id]; ok {
		return s.candidates[pos], true
	}
	return entity.Candidate{}, false
}

// CandidatesForSite returns every candidate whose SiteID equals siteID, in
// insertion order. It never returns nil.
func (s *Store) CandidatesForSite(siteID string) []entity.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	positions := s.candidatesBySite[siteID]
	out := make([]entity.Candidate, 0, len(positions))
	for _, pos := range positions {
		out = append(out, s.candidates[pos])
	}
	return out
}

// ProjectForSite resolves site.ProjectID. A dangling reference reports false.
func (s *Store) ProjectForSite(site entity.Site) (entity.Project, bool) {
	return s.ProjectByID(site.ProjectID)
}

// CoordinatorsForSite returns the collaborators referenced by either of the
// site's coordinator ids, in collection order. Missing ids are skipped.
func (s *Store) CoordinatorsForSite(site entity.Site) []entity.Collaborator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Collaborator, 0, 2)
	for _, col := range s.collaborators {
		if col.ID == "" {
			continue
		}
		if col.ID == site.ClientCoordinatorID || col.ID == site.SupplierCoordinatorID {
			out = append(out, col)
		}
	}
	return out
}

// ClientForCollaborator resolves the employer client, if any.
func (s *Store) ClientForCollaborator(col entity.Collaborator) (entity.Client, bool) {
	if !col.HasClient() {
		return entity.Client{}, false
	}
	return s.ClientByID(col.ClientID)
}

// CollaboratorsByType is what the coordinator pick-lists are built from.
func (s *Store) CollaboratorsByType(t entity.CollaboratorType) []entity.Collaborator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Collaborator, 0)
	for _, col := range s.collaborators {
		if col.Type == t {
			out = append(out, col)
		}
	}
	return out
}
