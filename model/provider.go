package model

import "context"

// Exchanger performs one request/response round trip with the remote chat
// endpoint.
//
// Defined here rather than in the provider package so that provider can
// depend on model without a cycle.
type Exchanger interface {
	// Exchange sends userText together with history (oldest first) and
	// returns the reply text. Every failure is reported as an error; a
	// response without a usable reply is not a failure.
	Exchange(ctx context.Context, userText string, history []Message) (string, error)

	// Endpoint returns the URL exchanges are sent to.
	Endpoint() string

	// Ping checks if the endpoint is reachable.
	Ping(ctx context.Context) error
}
