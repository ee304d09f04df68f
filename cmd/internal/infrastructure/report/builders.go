package report

import (
	"fmt"
	"strings"

	"conesites/cmd/internal/domain/entity"

	"github.com/dustin/go-humanize"
)

const missing = "-"

func Sites(sites []entity.Site) *Report {
	r := &Report{
		Kind:   KindSites,
		Title:  "Base de Sites",
		Header: []string{"ID Sharing", "Nome do Site", "Cidade/UF", "Projeto", "Coord. Cliente", "Status", "Data Target"},
		Rows:   make([][]string, 0, len(sites)),
	}
	for _, s := range sites {
		r.Rows = append(r.Rows, []string{
			s.SharingID,
			s.SharingName,
			cityState(s.City, s.State),
			s.ProjectID,
			orMissing(s.ClientCoordinatorID),
			s.Status.Label(),
			s.TargetDate,
		})
	}
	return r
}

func Candidates(cands []entity.Candidate) *Report {
	r := &Report{
		Kind:  KindCandidates,
		Title: "Base de Candidatos",
		Header: []string{
			"ID Candidato", "Candidato", "Site Vinculado", "Tipo", "Endereço",
			"Proprietário", "Valor", "Status", "Selecionado",
		},
		Rows: make([][]string, 0, len(cands)),
	}
	for _, c := range cands {
		r.Rows = append(r.Rows, []string{
			c.ID,
			c.Name,
			fmt.Sprintf("%s (%s)", c.SharingName, c.SharingID),
			c.SiteType.Label(),
			address(c.Street, c.Number),
			orMissing(c.LandlordName),
			FormatBRL(c.LeaseAmount),
			c.Status.Label(),
			yesNo(c.IsSelected),
		})
	}
	return r
}

func Clients(clients []entity.Client) *Report {
	r := &Report{
		Kind:   KindClients,
		Title:  "Base de Clientes",
		Header: []string{"ID", "CNPJ", "Razão Social", "Nome Fantasia", "Cidade/UF", "Situação"},
		Rows:   make([][]string, 0, len(clients)),
	}
	for _, c := range clients {
		r.Rows = append(r.Rows, []string{
			c.ID,
			c.CNPJ,
			c.BusinessName,
			c.TradeName,
			cityState(c.City, c.State),
			strings.ToUpper(string(c.Status)),
		})
	}
	return r
}

func Projects(projects []entity.Project) *Report {
	r := &Report{
		Kind:   KindProjects,
		Title:  "Base de Projetos",
		Header: []string{"ID Projeto", "Nome do Projeto", "Premissas", "Observações"},
		Rows:   make([][]string, 0, len(projects)),
	}
	for _, p := range projects {
		r.Rows = append(r.Rows, []string{p.ID, p.Name, p.Assumptions, orMissing(p.Notes)})
	}
	return r
}

func Collaborators(cols []entity.Collaborator) *Report {
	r := &Report{
		Kind:   KindCollaborators,
		Title:  "Base de Colaboradores",
		Header: []string{"ID", "Nome", "Tipo", "Função", "Email", "Celular", "Cliente (Vínculo)"},
		Rows:   make([][]string, 0, len(cols)),
	}
	for _, c := range cols {
		r.Rows = append(r.Rows, []string{
			c.ID,
			c.Name,
			string(c.Type),
			c.Role,
			c.Email,
			c.Mobile,
			orMissing(c.ClientID),
		})
	}
	return r
}

// FormatBRL formats an amount in Brazilian reais, e.g. R$ 4.500,00.
func FormatBRL(v float64) string {
	return "R$ " + humanize.FormatFloat("#.###,##", v)
}

func cityState(city, state string) string {
	return city + "/" + state
}

func address(street, number string) string {
	if street == "" {
		return missing
	}
	if number == "" {
		return street
	}
	return street + ", " + number
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
