// Package service holds the use cases behind the HTTP handlers.
package service

import "errors"

// ErrStorage wraps every repository failure. Handlers map it to a fixed 500 message.
var ErrStorage = errors.New("storage unavailable")
