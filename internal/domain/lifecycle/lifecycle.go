// Package lifecycle holds process-wide lifecycle settings shared by the
// long-running components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers, channels and publishers.
const DefaultTimeout = 10 * time.Second
