// Package timeouts defines shared timeout constants.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionIdle is the default time a page-load session survives without
// intents before it is discarded.
const SessionIdle = 30 * time.Minute

// SessionSweep is the default interval between idle-session sweeps.
const SessionSweep = time.Minute
