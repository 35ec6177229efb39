// Copyright (c) 2026 SkillSync. All rights reserved.

// Package capability models which backing dependencies were available when
// the process started.
//
// # Degraded Mode
//
// The platform can be allowed (via ALLOW_DEGRADED) to boot without a
// reachable database. That decision is made exactly once, at startup, and
// captured in an immutable [Status] value that is injected into the HTTP
// layer. Handlers never probe the database availability ad hoc.
package capability

// Status describes the dependency capabilities determined at startup.
//
// The zero value means "nothing available"; main constructs the real value
// after its connection attempts.
type Status struct {
	// DatabaseReady reports whether the PostgreSQL pool was connected and
	// migrated at startup.
	DatabaseReady bool
}

// Degraded reports whether the process is running without its backing store.
func (s Status) Degraded() bool {
	return !s.DatabaseReady
}
