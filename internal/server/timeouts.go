package server

import (
	"time"

	"github.com/preston-bernstein/football-players-service/internal/chat"
)

const (
	readHeaderTimeout  = 5 * time.Second
	readTimeout        = 10 * time.Second
	idleTimeout        = 60 * time.Second
	storageOpenTimeout = 5 * time.Second
	restoreTimeout     = 5 * time.Second
)

// POST /chat blocks on the upstream model, so writes must outlive its client timeout.
const writeTimeout = chat.UpstreamTimeout + 5*time.Second

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
