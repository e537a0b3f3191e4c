// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup probes (DB ping,
// HTTP server drain).
const DefaultTimeout = 10 * time.Second
