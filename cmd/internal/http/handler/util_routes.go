package handler

import (
	"context"
	"net/http"
	"strings"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/utils"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UtilService interface {
	GetCompanyByCNPJ(ctx context.Context, cnpj string) (*contract.CompanyResponse, apierror.ErrorResponse)
}

type DefaultUtilRoute struct {
	UtilService UtilService
}

func NewUtilRoute(utilService UtilService) *DefaultUtilRoute {
	return &DefaultUtilRoute{UtilService: utilService}
}

func (u *DefaultUtilRoute) GetCompany(c echo.Context) error {
	cnpj := strings.TrimSpace(c.Param("cnpj"))
	if !utils.IsCNPJValid(cnpj) {
		apierr := apierror.InvalidCNPJError
		return c.JSON(apierr.Code(), apierr)
	}

	company, apierr := u.UtilService.GetCompanyByCNPJ(c.Request().Context(), cnpj)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}
