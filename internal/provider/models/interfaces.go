package models

import (
	"context"
)

// Provider is the decision capability: given the conversation so far it
// returns either a direct answer or a set of tool calls.
type Provider interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
}
