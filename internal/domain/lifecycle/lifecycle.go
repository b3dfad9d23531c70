// Package lifecycle holds shared start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of long-lived resources.
const DefaultTimeout = 10 * time.Second
