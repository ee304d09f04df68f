package service

import (
	"context"
	"sync"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/infrastructure/gemini"
	"conesites/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

const (
	ClauseFallback = "Erro ao comunicar com a IA. Verifique sua chave de API."
	RisksFallback  = "Erro ao analisar riscos."
	ChatFallback   = "Desculpe, serviço indisponível no momento."

	EmptyClauseText = "Não foi possível gerar a cláusula."
	EmptyRisksText  = "Análise indisponível."
)

type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, history []gemini.Turn, message string) (string, error)
}

type AssistantStore interface {
	SiteByID(sharingID string) (entity.Site, bool)
	CandidateByID(id string) (entity.Candidate, bool)
}

type AssistantService struct {
	Store    AssistantStore
	Validate *validator.Validate

	// Generator is nil when no API key is configured.
	Generator TextGenerator

	pending *pendingSet
}

func NewAssistantService(st AssistantStore, generator TextGenerator, validate *validator.Validate) *AssistantService {
	return &AssistantService{
		Store:     st,
		Validate:  validate,
		Generator: generator,
		pending:   newPendingSet(),
	}
}

func (s *AssistantService) GenerateClause(ctx context.Context, siteID string, req *contract.ClauseRequest) (*contract.AIResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	site, ok := s.Store.SiteByID(siteID)
	if !ok {
		return nil, apierror.NotFoundError
	}

	cand, ok := s.Store.CandidateByID(req.CandidateID)
	if !ok || cand.SiteID != site.SharingID {
		return nil, apierror.UnknownCandidateError
	}

	key := "clause:" + site.SharingID
	if !s.pending.acquire(key) {
		return nil, apierror.AIRequestPendingError
	}
	defer s.pending.release(key)

	prompt := gemini.ClausePrompt(site, cand, req.ClauseType)
	return s.generate(ctx, key, prompt, ClauseFallback, EmptyClauseText), nil
}

func (s *AssistantService) AnalyzeRisks(ctx context.Context, siteID string) (*contract.AIResponse, apierror.ErrorResponse) {
	site, ok := s.Store.SiteByID(siteID)
	if !ok {
		return nil, apierror.NotFoundError
	}

	key := "risks:" + site.SharingID
	if !s.pending.acquire(key) {
		return nil, apierror.AIRequestPendingError
	}
	defer s.pending.release(key)

	return s.generate(ctx, key, gemini.RiskPrompt(site), RisksFallback, EmptyRisksText), nil
}

func (s *AssistantService) Chat(ctx context.Context, req *contract.ChatRequest) (*contract.AIResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	key := "chat:" + req.SessionID
	if !s.pending.acquire(key) {
		return nil, apierror.AIRequestPendingError
	}
	defer s.pending.release(key)

	if s.Generator == nil {
		log.Errorf("assistant %s: %v", key, gemini.ErrNotConfigured)
		return failed(ChatFallback), nil
	}

	history := make([]gemini.Turn, len(req.History))
	for i, turn := range req.History {
		history[i] = gemini.Turn{Role: turn.Role, Text: turn.Text}
	}

	text, err := s.Generator.Chat(ctx, history, req.Message)
	if err != nil {
		log.Errorf("assistant %s failed: %v", key, err)
		return failed(ChatFallback), nil
	}
	if text == "" {
		return failed(ChatFallback), nil
	}
	return succeeded(text), nil
}

func (s *AssistantService) generate(ctx context.Context, key, prompt, fallback, empty string) *contract.AIResponse {
	if s.Generator == nil {
		log.Errorf("assistant %s: %v", key, gemini.ErrNotConfigured)
		return failed(fallback)
	}

	text, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		log.Errorf("assistant %s failed: %v", key, err)
		return failed(fallback)
	}
	if text == "" {
		return succeeded(empty)
	}
	return succeeded(text)
}

func succeeded(text string) *contract.AIResponse {
	return &contract.AIResponse{Status: contract.AIStatusSucceeded, Text: text}
}

func failed(text string) *contract.AIResponse {
	return &contract.AIResponse{Status: contract.AIStatusFailed, Text: text}
}

// pendingSet holds the keys of in-flight AI requests.
type pendingSet struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newPendingSet() *pendingSet {
	return &pendingSet{keys: make(map[string]struct{})}
}

func (p *pendingSet) acquire(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, busy := p.keys[key]; busy {
		return false
	}
	p.keys[key] = struct{}{}
	return true
}

func (p *pendingSet) release(key string) {
	p.mu.Lock()
	delete(p.keys, key)
	p.mu.Unlock()
}
