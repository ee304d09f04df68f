package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/infrastructure/report"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func apiErrAt(args mock.Arguments, i int) apierror.ErrorResponse {
	if v := args.Get(i); v != nil {
		return v.(apierror.ErrorResponse)
	}
	return nil
}

type mockClientService struct {
	mock.Mock
}

func (m *mockClientService) GetClients() []*contract.ClientResponse {
	return m.Called().Get(0).([]*contract.ClientResponse)
}

func (m *mockClientService) GetClient(id string) (*contract.ClientResponse, apierror.ErrorResponse) {
	args := m.Called(id)
	resp, _ := args.Get(0).(*contract.ClientResponse)
	return resp, apiErrAt(args, 1)
}

func (m *mockClientService) CreateClient(req *contract.CreateClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*contract.ClientResponse)
	return resp, apiErrAt(args, 1)
}

type mockCollaboratorService struct {
	mock.Mock
}

func (m *mockCollaboratorService) GetCollaborators(colType string) ([]*contract.CollaboratorResponse, apierror.ErrorResponse) {
	args := m.Called(colType)
	resp, _ := args.Get(0).([]*contract.CollaboratorResponse)
	return resp, apiErrAt(args, 1)
}

func (m *mockCollaboratorService) GetCollaborator(id string) (*contract.CollaboratorResponse, apierror.ErrorResponse) {
	args := m.Called(id)
	resp, _ := args.Get(0).(*contract.CollaboratorResponse)
	return resp, apiErrAt(args, 1)
}

func (m *mockCollaboratorService) CreateCollaborator(req *contract.CreateCollaboratorRequest) (*contract.CollaboratorResponse, apierror.ErrorResponse) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*contract.CollaboratorResponse)
	return resp, apiErrAt(args, 1)
}

type mockSiteService struct {
	mock.Mock
}

func (m *mockSiteService) SearchSites(term, status string) []*contract.SiteResponse {
	return m.Called(term, status).Get(0).([]*contract.SiteResponse)
}

func (m *mockSiteService) GetSiteDetails(sharingID string) (*contract.SiteDetailsResponse, apierror.ErrorResponse) {
	args := m.Called(sharingID)
	resp, _ := args.Get(0).(*contract.SiteDetailsResponse)
	return resp, apiErrAt(args, 1)
}

func (m *mockSiteService) CreateSite(req *contract.CreateSiteRequest) (*contract.SiteResponse, apierror.ErrorResponse) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*contract.SiteResponse)
	return resp, apiErrAt(args, 1)
}

type mockCandidateService struct {
	mock.Mock
}

func (m *mockCandidateService) GetCandidates(siteID string) []*contract.CandidateResponse {
	return m.Called(siteID).Get(0).([]*contract.CandidateResponse)
}

func (m *mockCandidateService) GetCandidate(id string) (*contract.CandidateResponse, apierror.ErrorResponse) {
	args := m.Called(id)
	resp, _ := args.Get(0).(*contract.CandidateResponse)
	return resp, apiErrAt(args, 1)
}

func (m *mockCandidateService) CreateCandidate(req *contract.CreateCandidateRequest) (*contract.CandidateResponse, apierror.ErrorResponse) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*contract.CandidateResponse)
	return resp, apiErrAt(args, 1)
}

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) RenderReport(kind, format string) ([]byte, report.Format, apierror.ErrorResponse) {
	args := m.Called(kind, format)
	body, _ := args.Get(0).([]byte)
	return body, args.Get(1).(report.Format), apiErrAt(args, 2)
}

func (m *mockReportService) ExportReport(ctx context.Context, kind, format string) (*contract.ReportExportResponse, apierror.ErrorResponse) {
	args := m.Called(ctx, kind, format)
	resp, _ := args.Get(0).(*contract.ReportExportResponse)
	return resp, apiErrAt(args, 1)
}

type mockAssistantService struct {
	mock.Mock
}

func (m *mockAssistantService) GenerateClause(ctx context.Context, siteID string, req *contract.ClauseRequest) (*contract.AIResponse, apierror.ErrorResponse) {
	args := m.Called(ctx, siteID, req)
	resp, _ := args.Get(0).(*contract.AIResponse)
	return resp, apiErrAt(args, 1)
}

func (m *mockAssistantService) AnalyzeRisks(ctx context.Context, siteID string) (*contract.AIResponse, apierror.ErrorResponse) {
	args := m.Called(ctx, siteID)
	resp, _ := args.Get(0).(*contract.AIResponse)
	return resp, apiErrAt(args, 1)
}

func (m *mockAssistantService) Chat(ctx context.Context, req *contract.ChatRequest) (*contract.AIResponse, apierror.ErrorResponse) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*contract.AIResponse)
	return resp, apiErrAt(args, 1)
}

type mockUtilService struct {
	mock.Mock
}

func (m *mockUtilService) GetCompanyByCNPJ(ctx context.Context, cnpj string) (*contract.CompanyResponse, apierror.ErrorResponse) {
	args := m.Called(ctx, cnpj)
	resp, _ := args.Get(0).(*contract.CompanyResponse)
	return resp, apiErrAt(args, 1)
}

type mockWSService struct {
	mock.Mock
}

func (m *mockWSService) RegisterConnection(connectionID string) apierror.ErrorResponse {
	return apiErrAt(m.Called(connectionID), 0)
}

func (m *mockWSService) Heartbeat(connectionID string) (*contract.HeartbeatResponse, apierror.ErrorResponse) {
	args := m.Called(connectionID)
	resp, _ := args.Get(0).(*contract.HeartbeatResponse)
	return resp, apiErrAt(args, 1)
}

func (m *mockWSService) RemoveConnection(connectionID string) {
	m.Called(connectionID)
}

// compile-time checks
var (
	_ ClientService       = (*mockClientService)(nil)
	_ CollaboratorService = (*mockCollaboratorService)(nil)
	_ SiteService         = (*mockSiteService)(nil)
	_ CandidateService    = (*mockCandidateService)(nil)
	_ ReportService       = (*mockReportService)(nil)
	_ AssistantService    = (*mockAssistantService)(nil)
	_ UtilService         = (*mockUtilService)(nil)
	_ WebSocketService    = (*mockWSService)(nil)
)
