// Package fixtures loads the collections a store is seeded with at startup.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/domain/store"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type document struct {
	Clients       []entity.Client       `yaml:"clients"`
	Projects      []entity.Project      `yaml:"projects"`
	Collaborators []entity.Collaborator `yaml:"collaborators"`
	Sites         []entity.Site         `yaml:"sites"`
	Candidates    []entity.Candidate    `yaml:"candidates"`
}

// Load reads the fixture file at path, or the embedded fixtures when path is empty.
func Load(path string) (store.Seed, error) {
	if path == "" {
		return Parse(defaultFixtures)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return store.Seed{}, fmt.Errorf("read fixtures file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (store.Seed, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return store.Seed{}, fmt.Errorf("parse fixtures: %w", err)
	}

	return store.Seed{
		Clients:       doc.Clients,
		Projects:      doc.Projects,
		Collaborators: doc.Collaborators,
		Sites:         doc.Sites,
		Candidates:    doc.Candidates,
	}, nil
}
