package service

import (
	"context"
	"errors"
	"strings"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/infrastructure/minhareceita"
	"conesites/cmd/internal/utils"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type CompanyRepository interface {
	Save(company *entity.Company) error
	FindByCNPJ(cnpj string) (*entity.Company, error)
}

type CompanyLookup interface {
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error)
}

type UtilService struct {
	ReceitaClient CompanyLookup
	CompanyRepo   CompanyRepository
}

func NewUtilService(client CompanyLookup, companyRepo CompanyRepository) *UtilService {
	return &UtilService{
		ReceitaClient: client,
		CompanyRepo:   companyRepo,
	}
}

// GetCompanyByCNPJ accepts punctuated or digits-only CNPJs.
func (u *UtilService) GetCompanyByCNPJ(ctx context.Context, cnpj string) (*contract.CompanyResponse, apierror.ErrorResponse) {
	if !utils.IsCNPJValid(cnpj) {
		return nil, apierror.InvalidCNPJError
	}
	cnpj = utils.DigitsOnly(cnpj)

	company, fromCache, apierr := u.findCompany(ctx, cnpj)
	if apierr != nil {
		return nil, apierr
	}
	return toCompanyResp(company, fromCache), nil
}

// findCompany is a utility function that will try to resolve the CNPJ into a company.
// It returns the company, a boolean (true = cached, false = API fetch) and a possible error response.
func (u *UtilService) findCompany(ctx context.Context, cnpj string) (*entity.Company, bool, apierror.ErrorResponse) {
	cached, err := u.CompanyRepo.FindByCNPJ(cnpj)
	if err != nil {
		log.Errorf("failed to find company by cnpj %s: %v", cnpj, err)
		return nil, false, apierror.InternalServerError
	}

	if cached != nil {
		if cached.Found {
			return cached, true, nil
		}
		return nil, false, apierror.NotFoundError
	}

	// Cache miss
	apiCompany, apierr := u.fetchFromAPI(ctx, cnpj)
	if apierr != nil {
		return nil, false, apierr
	}

	err = u.CompanyRepo.Save(apiCompany)
	if err != nil {
		// The lookup itself succeeded, only the cache is lost.
		log.Errorf("failed to save company cache for CNPJ %s: %v", cnpj, err)
	}

	return apiCompany, false, nil
}

func (u *UtilService) fetchFromAPI(ctx context.Context, cnpj string) (*entity.Company, apierror.ErrorResponse) {
	company, err := u.ReceitaClient.GetByCNPJ(ctx, cnpj)
	if err != nil {
		if errors.Is(err, minhareceita.ErrNotFound) {
			u.cacheNegativeResult(cnpj)
			return nil, apierror.NotFoundError
		}
		log.Errorf("failed to fetch company by cnpj %s: %v", cnpj, err)
		return nil, apierror.LookupUnavailableError
	}

	company.CNPJ = cnpj
	company.Found = true
	company.CachedAt = utils.NowUTC()
	return company, nil
}

func (u *UtilService) cacheNegativeResult(cnpj string) {
	emptyCompany := &entity.Company{
		CNPJ:     cnpj,
		Found:    false,
		CachedAt: utils.NowUTC(),
	}
	if err := u.CompanyRepo.Save(emptyCompany); err != nil {
		log.Errorf("failed to save negative company cache for CNPJ %s: %v", cnpj, err)
	}
}

func toCompanyResp(c *entity.Company, cached bool) *contract.CompanyResponse {
	return &contract.CompanyResponse{
		CNPJ:         utils.FormatCNPJ(c.CNPJ),
		LegalName:    c.LegalName,
		TradeName:    c.TradeName,
		MainActivity: c.MainActivity,
		RegStatus:    string(c.RegStatus),
		RegDate:      c.RegDate,
		Partners:     toPartnersResponse(c.Partners),
		Cached:       cached,
		Prefill:      toClientPrefill(c),
	}
}

func toPartnersResponse(ps []*entity.CompanyPartner) []*contract.PartnerResponse {
	partners := make([]*contract.PartnerResponse, len(ps))
	for i, p := range ps {
		partners[i] = &contract.PartnerResponse{
			Name: p.Name,
			Role: p.Role,
		}
	}
	return partners
}

// toClientPrefill fills the client form from the registry record. Only an
// active registration prefills an active client.
func toClientPrefill(c *entity.Company) *contract.CreateClientRequest {
	status := string(entity.ClientInactive)
	if c.RegStatus == entity.RegStatusActive {
		status = string(entity.ClientActive)
	}

	tradeName := c.TradeName
	if tradeName == "" {
		tradeName = c.LegalName
	}

	return &contract.CreateClientRequest{
		CNPJ:         utils.FormatCNPJ(c.CNPJ),
		BusinessName: c.LegalName,
		TradeName:    tradeName,
		Activity:     c.MainActivity,
		ZipCode:      c.AddressZipCode,
		Street:       strings.TrimSpace(c.AddressType + " " + c.AddressStreetName),
		Number:       c.AddressNumber,
		City:         c.AddressCity,
		State:        c.AddressState,
		Status:       &status,
	}
}
