// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix used for Redis availability cache keys.
const AvailabilityCachePrefix = "avail:"

// AvailabilityCacheTTL is the time-to-live for cached month grids. Entries are
// superseded earlier by a version bump whenever schedule state mutates.
const AvailabilityCacheTTL = 5 * time.Minute
