package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type form struct {
	CNPJ  string  `validate:"required,cnpj"`
	State string  `validate:"required,uf"`
	Date  string  `validate:"required,isodate"`
	Opt   *string `validate:"omitempty,isodate"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func TestCustomTags_Valid(t *testing.T) {
	v := newValidate()
	require.NoError(t, v.Struct(&form{CNPJ: "11.222.333/0001-81", State: "SP", Date: "2024-12-01"}))
	require.NoError(t, v.Struct(&form{CNPJ: "11222333000181", State: "RJ", Date: "2023-01-15"}))
}

func TestCustomTags_Invalid(t *testing.T) {
	v := newValidate()
	bad := "01/12/2024"

	err := v.Struct(&form{CNPJ: "11222333000100", State: "sp", Date: "2024-13-01", Opt: &bad})
	require.Error(t, err)

	ve, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	tags := map[string]string{}
	for _, fe := range ve {
		tags[fe.Field()] = fe.Tag()
	}
	require.Equal(t, map[string]string{
		"CNPJ":  "cnpj",
		"State": "uf",
		"Date":  "isodate",
		"Opt":   "isodate",
	}, tags)
}
