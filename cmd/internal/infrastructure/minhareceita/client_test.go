package minhareceita

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"conesites/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
	"cnpj": "11222333000181",
	"razao_social": "TORRES DO BRASIL LTDA",
	"nome_fantasia": "TORRESBR",
	"cnae_fiscal_descricao": "Aluguel de imóveis próprios",
	"descricao_situacao_cadastral": "ATIVA",
	"data_situacao_cadastral": "2005-11-03",
	"descricao_tipo_de_logradouro": "AVENIDA",
	"logradouro": "PAULISTA",
	"numero": "1000",
	"bairro": "BELA VISTA",
	"cep": "01310100",
	"municipio": "SAO PAULO",
	"uf": "sp",
	"qsa": [
		{"nome_socio": "MARIA SILVA", "qualificacao_socio": "Sócio-Administrador"},
		{"nome_socio": "MARIA SILVA", "qualificacao_socio": "Sócio"}
	]
}`

func TestGetByCNPJ_MapsResponse(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, srv.Client())
	company, err := client.GetByCNPJ(context.Background(), "11222333000181")
	require.NoError(t, err)

	assert.Equal(t, "/11222333000181", gotPath)
	assert.Equal(t, "11222333000181", company.CNPJ)
	assert.Equal(t, "TORRES DO BRASIL LTDA", company.LegalName)
	assert.Equal(t, "TORRESBR", company.TradeName)
	assert.Equal(t, entity.RegStatusActive, company.RegStatus)
	assert.Equal(t, "01310100", company.AddressZipCode)
	assert.Equal(t, "SP", company.AddressState)
	require.Len(t, company.Partners, 1)
	assert.Equal(t, "MARIA SILVA", company.Partners[0].Name)
}

func TestGetByCNPJ_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClientWithBaseURL(srv.URL, srv.Client()).GetByCNPJ(context.Background(), "11222333000181")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetByCNPJ_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClientWithBaseURL(srv.URL, srv.Client()).GetByCNPJ(context.Background(), "11222333000181")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestTranslateStatus(t *testing.T) {
	assert.Equal(t, entity.RegStatusActive, translateStatus("ativa"))
	assert.Equal(t, entity.RegStatusClosed, translateStatus("BAIXADA"))
	assert.Equal(t, entity.RegStatusSuspended, translateStatus("SUSPENSA"))
	assert.Equal(t, entity.RegStatusUnfit, translateStatus("INAPTA"))
	assert.Equal(t, entity.RegStatusUnknown, translateStatus("NULA"))
}
