package contract

type AIStatus string

const (
	AIStatusSucceeded AIStatus = "succeeded"
	AIStatusFailed    AIStatus = "failed"
)

type ClauseRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,max=40"`
	ClauseType  string `json:"clause_type" validate:"max=120"`
}

type ChatTurn struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required,max=8000"`
}

type ChatRequest struct {
	// SessionID keys the pending slot; callers without one share a slot.
	SessionID string      `json:"session_id" validate:"max=80"`
	History   []*ChatTurn `json:"history" validate:"max=100,dive,required"`
	Message   string      `json:"message" validate:"required,max=8000"`
}

// AIResponse holds opaque markdown. A failed request still answers 200
// with a displayable fallback in Text.
type AIResponse struct {
	Status AIStatus `json:"status"`
	Text   string   `json:"text"`
}
