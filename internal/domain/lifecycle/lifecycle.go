// Package lifecycle holds process-wide timing constants for startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and connections.
const DefaultTimeout = 10 * time.Second
