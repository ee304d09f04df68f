package gemini

import (
	"fmt"
	"strings"

	"conesites/cmd/internal/domain/entity"
)

const DefaultClauseType = "Reajuste Anual (IGPM)"

const LegalAssistantInstruction = "Você é um assistente virtual especializado em Telecomunicações, " +
	"focado em Aquisição de Sites (SA) e Licenciamento. Responda de forma concisa e técnica sobre leis " +
	"municipais, estaduais e federais (Lei das Antenas) do Brasil."

// ClausePrompt asks for a lease clause of clauseType for the candidate's
// landlord, in the context of its site.
func ClausePrompt(site entity.Site, cand entity.Candidate, clauseType string) string {
	if strings.TrimSpace(clauseType) == "" {
		clauseType = DefaultClauseType
	}

	var b strings.Builder
	b.WriteString("Você é um especialista jurídico em contratos de telecomunicações no Brasil.\n\n")

	b.WriteString("Contexto do Site/Projeto:\n")
	fmt.Fprintf(&b, "- ID Sharing: %s\n", site.SharingID)
	fmt.Fprintf(&b, "- Cidade: %s\n", site.City)
	fmt.Fprintf(&b, "- Regional: %s\n\n", site.Regional)

	b.WriteString("Dados do Candidato (Locador):\n")
	fmt.Fprintf(&b, "- Nome do Candidato: %s\n", cand.Name)
	fmt.Fprintf(&b, "- Proprietário: %s\n", cand.LandlordName)
	fmt.Fprintf(&b, "- Valor Proposto: R$ %s\n", formatAmount(cand.LeaseAmount))
	fmt.Fprintf(&b, "- Endereço: %s, %s - %s\n\n", cand.Street, cand.Number, cand.Neighborhood)

	b.WriteString("Tarefa:\n")
	fmt.Fprintf(&b, "Redija uma cláusula contratual de \"%s\" para este contrato de locação.\n", clauseType)
	b.WriteString("A cláusula deve ser formal, proteger os interesses da operadora (locatária), ")
	b.WriteString("mas estar em conformidade com a Lei do Inquilinato brasileira.\n")
	b.WriteString("Use formatação Markdown para o texto jurídico.\n")
	return b.String()
}

// RiskPrompt asks for the permitting risks of a site.
func RiskPrompt(site entity.Site) string {
	var b strings.Builder
	b.WriteString("Você é um consultor especialista em licenciamento urbanístico para torres de celular ")
	b.WriteString("(EBR - Estação Rádio Base).\n\n")
	b.WriteString("Analise o seguinte cenário e liste potenciais riscos e sugestões para o licenciamento:\n\n")

	fmt.Fprintf(&b, "Site Sharing ID: %s (%s)\n", site.SharingName, site.SharingID)
	fmt.Fprintf(&b, "Cidade: %s, %s\n", site.City, site.State)
	fmt.Fprintf(&b, "Altura Solicitada: %sm\n", formatAmount(site.RequestedHeight))
	fmt.Fprintf(&b, "Estágio Atual: %s\n", site.Status)
	fmt.Fprintf(&b, "Premissas: \"%s\"\n\n", site.ProjectAssumptions)

	b.WriteString("Considere as leis gerais de antenas no Brasil e as dificuldades típicas em grandes centros urbanos.\n")
	b.WriteString("Forneça a resposta em formato de lista (bullet points) HTML ou Markdown.\n")
	return b.String()
}

// formatAmount prints numbers the way they were typed: 4500 stays "4500"
// and 45.5 stays "45.5".
func formatAmount(v float64) string {
	return fmt.Sprintf("%g", v)
}
