package application

import "context"

// ActivityResult is what the host hands back once an external activity completes
type ActivityResult struct {
	RequestCode int               `json:"request_code"`
	ResultCode  int               `json:"result_code"`
	Data        map[string]string `json:"data,omitempty"`
}

// HandleActivityResult accepts activity results. Visa Checkout reports its outcome
// through the SDK launch callback, so nothing here reaches any collaborator.
type HandleActivityResult struct{}

// NewHandleActivityResult creates a new HandleActivityResult use case
func NewHandleActivityResult() *HandleActivityResult {
	return &HandleActivityResult{}
}

// Execute is a no-op
func (uc *HandleActivityResult) Execute(_ context.Context, _ *ActivityResult) {}
