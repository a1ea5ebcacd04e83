package provider

import "errors"

// ErrRemoteExchange wraps every failed exchange, whatever the cause
// (transport, status code or unparseable body). Callers only need
// errors.Is(err, ErrRemoteExchange); the wrapped error is for the debug log.
var ErrRemoteExchange = errors.New("remote exchange failed")
