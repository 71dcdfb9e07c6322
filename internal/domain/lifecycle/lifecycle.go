// Package lifecycle holds shared constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or shutdown step.
const DefaultTimeout = 10 * time.Second
