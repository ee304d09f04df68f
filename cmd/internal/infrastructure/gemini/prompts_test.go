package gemini

import (
	"testing"

	"conesites/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestClausePrompt(t *testing.T) {
	site := entity.Site{SharingID: "SP-001", City: "São Paulo", Regional: "SP Capital"}
	cand := entity.Candidate{
		Name:         "Edifício Central",
		LandlordName: "Condomínio Central",
		LeaseAmount:  4500,
		Street:       "Av. Paulista",
		Number:       "1000",
		Neighborhood: "Bela Vista",
	}

	prompt := ClausePrompt(site, cand, "Rescisão")

	assert.Contains(t, prompt, "- ID Sharing: SP-001")
	assert.Contains(t, prompt, "- Regional: SP Capital")
	assert.Contains(t, prompt, "- Valor Proposto: R$ 4500")
	assert.Contains(t, prompt, "- Endereço: Av. Paulista, 1000 - Bela Vista")
	assert.Contains(t, prompt, `cláusula contratual de "Rescisão"`)
}

func TestClausePrompt_DefaultClauseType(t *testing.T) {
	prompt := ClausePrompt(entity.Site{}, entity.Candidate{}, "  ")
	assert.Contains(t, prompt, `"Reajuste Anual (IGPM)"`)
}

func TestRiskPrompt(t *testing.T) {
	site := entity.Site{
		SharingID:          "SP-001",
		SharingName:        "Paulista Centro",
		City:               "São Paulo",
		State:              "SP",
		RequestedHeight:    30,
		Status:             entity.SiteStatusLicensing,
		ProjectAssumptions: "Rooftop preferencial",
	}

	prompt := RiskPrompt(site)

	assert.Contains(t, prompt, "Site Sharing ID: Paulista Centro (SP-001)")
	assert.Contains(t, prompt, "Cidade: São Paulo, SP")
	assert.Contains(t, prompt, "Altura Solicitada: 30m")
	assert.Contains(t, prompt, "Estágio Atual: LICENSING")
	assert.Contains(t, prompt, `Premissas: "Rooftop preferencial"`)
}

func TestNew_WithoutKey(t *testing.T) {
	_, err := New(t.Context(), "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestToRole(t *testing.T) {
	assert.EqualValues(t, "model", toRole(RoleModel))
	assert.EqualValues(t, "user", toRole(RoleUser))
	assert.EqualValues(t, "user", toRole("system"))
}
