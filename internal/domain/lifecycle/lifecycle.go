// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks such as DB pings and
// HTTP server drain.
const DefaultTimeout = 30 * time.Second
