package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/infrastructure/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *mockGenerator) Chat(ctx context.Context, history []gemini.Turn, message string) (string, error) {
	args := m.Called(ctx, history, message)
	return args.String(0), args.Error(1)
}

func TestGenerateClause_Succeeds(t *testing.T) {
	st := trackerStore()
	site, _ := st.SiteByID("SP-001")
	cand, _ := st.CandidateByID("CAND-01")
	prompt := gemini.ClausePrompt(site, cand, gemini.DefaultClauseType)

	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, prompt).Return("**CLÁUSULA 1ª**", nil)

	svc := NewAssistantService(st, gen, newValidator())
	resp, apierr := svc.GenerateClause(context.Background(), "SP-001", &contract.ClauseRequest{CandidateID: "CAND-01"})
	require.Nil(t, apierr)

	assert.Equal(t, contract.AIStatusSucceeded, resp.Status)
	assert.Equal(t, "**CLÁUSULA 1ª**", resp.Text)
	gen.AssertExpectations(t)
}

func TestGenerateClause_FailureFallbacks(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()
	gen.On("Generate", mock.Anything, mock.Anything).Return("", nil).Once()

	svc := NewAssistantService(trackerStore(), gen, newValidator())
	req := &contract.ClauseRequest{CandidateID: "CAND-01", ClauseType: "Rescisão"}

	resp, apierr := svc.GenerateClause(context.Background(), "SP-001", req)
	require.Nil(t, apierr)
	assert.Equal(t, contract.AIStatusFailed, resp.Status)
	assert.Equal(t, ClauseFallback, resp.Text)

	resp, apierr = svc.GenerateClause(context.Background(), "SP-001", req)
	require.Nil(t, apierr)
	assert.Equal(t, contract.AIStatusSucceeded, resp.Status)
	assert.Equal(t, EmptyClauseText, resp.Text)
}

func TestGenerateClause_CandidateMustBelongToSite(t *testing.T) {
	svc := NewAssistantService(trackerStore(), &mockGenerator{}, newValidator())

	_, apierr := svc.GenerateClause(context.Background(), "SP-001", &contract.ClauseRequest{CandidateID: "CAND-404"})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())

	_, apierr = svc.GenerateClause(context.Background(), "SP-404", &contract.ClauseRequest{CandidateID: "CAND-01"})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	_, apierr = svc.GenerateClause(context.Background(), "SP-001", &contract.ClauseRequest{})
	requireFieldError(t, apierr, "candidate_id")
}

func TestAnalyzeRisks_WithoutGenerator(t *testing.T) {
	svc := NewAssistantService(trackerStore(), nil, newValidator())

	resp, apierr := svc.AnalyzeRisks(context.Background(), "SP-001")
	require.Nil(t, apierr)
	assert.Equal(t, contract.AIStatusFailed, resp.Status)
	assert.Equal(t, RisksFallback, resp.Text)
}

func TestAnalyzeRisks_EmptyAnswer(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return("", nil)

	svc := NewAssistantService(trackerStore(), gen, newValidator())
	resp, apierr := svc.AnalyzeRisks(context.Background(), "SP-001")
	require.Nil(t, apierr)
	assert.Equal(t, EmptyRisksText, resp.Text)
}

func TestAnalyzeRisks_SuppressesConcurrentRequest(t *testing.T) {
	started := make(chan struct{})
	unblock := make(chan struct{})

	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-unblock
	}).Return("- Altura acima do gabarito", nil).Once()

	svc := NewAssistantService(trackerStore(), gen, newValidator())

	done := make(chan *contract.AIResponse)
	go func() {
		resp, _ := svc.AnalyzeRisks(context.Background(), "SP-001")
		done <- resp
	}()
	<-started

	_, apierr := svc.AnalyzeRisks(context.Background(), "SP-001")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusConflict, apierr.Code())

	close(unblock)
	first := <-done
	assert.Equal(t, contract.AIStatusSucceeded, first.Status)

	// The slot is free again once the first request settles.
	gen.On("Generate", mock.Anything, mock.Anything).Return("ok", nil).Once()
	resp, apierr := svc.AnalyzeRisks(context.Background(), "SP-001")
	require.Nil(t, apierr)
	assert.Equal(t, "ok", resp.Text)
}

func TestChat(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Chat", mock.Anything, []gemini.Turn{{Role: "user", Text: "Olá"}, {Role: "model", Text: "Oi!"}}, "Lei das Antenas?").
		Return("Lei 13.116/2015", nil)

	svc := NewAssistantService(trackerStore(), gen, newValidator())
	resp, apierr := svc.Chat(context.Background(), &contract.ChatRequest{
		History: []*contract.ChatTurn{{Role: "user", Text: "Olá"}, {Role: "model", Text: "Oi!"}},
		Message: " Lei das Antenas? ",
	})
	require.Nil(t, apierr)
	assert.Equal(t, contract.AIStatusSucceeded, resp.Status)
	assert.Equal(t, "Lei 13.116/2015", resp.Text)
}

func TestChat_Failures(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Chat", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("unavailable"))

	svc := NewAssistantService(trackerStore(), gen, newValidator())
	resp, apierr := svc.Chat(context.Background(), &contract.ChatRequest{Message: "Oi"})
	require.Nil(t, apierr)
	assert.Equal(t, contract.AIStatusFailed, resp.Status)
	assert.Equal(t, ChatFallback, resp.Text)

	_, apierr = svc.Chat(context.Background(), &contract.ChatRequest{
		History: []*contract.ChatTurn{{Role: "system", Text: "x"}},
		Message: "Oi",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}
