package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/domain/store"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	seed, err := Load("")
	require.NoError(t, err)

	require.Len(t, seed.Clients, 1)
	require.Len(t, seed.Projects, 2)
	require.Len(t, seed.Collaborators, 2)
	require.Len(t, seed.Sites, 3)
	require.Len(t, seed.Candidates, 3)

	require.Equal(t, entity.ClientActive, seed.Clients[0].Status)
	require.Equal(t, "CLI-01", seed.Collaborators[0].ClientID)
	require.Empty(t, seed.Collaborators[1].ClientID)
	require.Equal(t, entity.SiteStatusReadyForConstruction, seed.Sites[2].Status)
	require.Equal(t, 4500.0, seed.Candidates[0].LeaseAmount)
	require.Equal(t, "1000", seed.Candidates[0].Number)
}

func TestLoad_EmbeddedDefaultsAreConsistent(t *testing.T) {
	seed, err := Load("")
	require.NoError(t, err)
	s := store.New(seed)

	for _, site := range s.Sites() {
		_, ok := s.ProjectForSite(site)
		require.True(t, ok, site.SharingID)
	}
	for _, cand := range s.Candidates() {
		_, ok := s.SiteByID(cand.SiteID)
		require.True(t, ok, cand.ID)
	}
	require.Len(t, s.CandidatesForSite("SP-001"), 2)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := "projects:\n  - id: P1\n    name: Only\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	seed, err := Load(path)
	require.NoError(t, err)
	require.Len(t, seed.Projects, 1)
	require.Empty(t, seed.Sites)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Parse([]byte("sites: [this is: not valid"))
	require.Error(t, err)
}
