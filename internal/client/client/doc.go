// Package client talks to the gophpass password service.
//
// Client is the transport-agnostic contract used by the CLI; GRPCClient
// implements it over gRPC with the JSON codec. After a successful Login the
// access token is kept in memory and attached to every call by a unary
// interceptor until Logout.
//
// Business outcomes (validation failures, unknown users, wrong passwords)
// arrive as response envelopes. Transport problems are mapped to
// ErrUnavailable and ErrUnauthorized.
package client
