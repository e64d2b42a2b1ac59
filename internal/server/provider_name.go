package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/football-players-service/internal/providers"
	"github.com/preston-bernstein/football-players-service/internal/providers/fixture"
	"github.com/preston-bernstein/football-players-service/internal/providers/remote"
)

const (
	providerFixture = "fixture"
	providerRemote  = "remote"
)

// providerName labels logs and metrics with the provider that actually serves
// players, so a remote config that fell back to the fixture reports "fixture".
// Other implementations use the configured name, then their package name.
func providerName(raw string, provider providers.PlayerProvider) string {
	switch provider.(type) {
	case *fixture.Provider:
		return providerFixture
	case *remote.Client:
		return providerRemote
	}
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		typeName := strings.TrimPrefix(fmt.Sprintf("%T", provider), "*")
		pkg, _, _ := strings.Cut(typeName, ".")
		return strings.ToLower(pkg)
	}
	return "provider"
}
