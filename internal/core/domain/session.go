package domain

import "errors"

// Session state lives entirely server-side: an opaque cookie token maps to a
// user id in the session store, which is authoritative. A token that no
// longer resolves is dead regardless of what the client still holds.

var ErrSessionNotFound = errors.New("session not found")
var ErrUnauthorized = errors.New("authentication required")
