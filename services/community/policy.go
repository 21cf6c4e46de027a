package community

import (
	"strings"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

// NeighborhoodPolicy answers sensitivity and neighbor-fallback questions for
// neighborhoods by name. Lookups are case-insensitive and the zero value
// treats every neighborhood as non-sensitive with no neighbors.
type NeighborhoodPolicy struct {
	sensitive map[string]bool
	neighbors map[string][]string
	fallback  models.SensitiveFallbackMode
}

// NewNeighborhoodPolicy builds a policy table from configuration
func NewNeighborhoodPolicy(cfg models.PolicyConfig) *NeighborhoodPolicy {
	p := &NeighborhoodPolicy{
		sensitive: make(map[string]bool),
		neighbors: make(map[string][]string),
		fallback:  cfg.SensitiveFallback,
	}
	if p.fallback == "" {
		p.fallback = models.SensitiveFallbackNeighborOnly
	}
	for _, name := range cfg.SensitiveNeighborhoods {
		p.sensitive[normalizeName(name)] = true
	}
	for from, tos := range cfg.NeighborMap {
		key := normalizeName(from)
		for _, to := range tos {
			p.neighbors[key] = append(p.neighbors[key], strings.TrimSpace(to))
		}
	}
	return p
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsSensitive reports whether the neighborhood is flagged as sensitive
func (p *NeighborhoodPolicy) IsSensitive(name string) bool {
	return p.sensitive[normalizeName(name)]
}

// AllowedNeighbors returns the fallback neighbor names configured for the
// neighborhood, in configuration order.
func (p *NeighborhoodPolicy) AllowedNeighbors(name string) []string {
	return p.neighbors[normalizeName(name)]
}

// IsAllowedNeighbor reports whether candidate is a configured fallback
// neighbor of name.
func (p *NeighborhoodPolicy) IsAllowedNeighbor(name, candidate string) bool {
	want := normalizeName(candidate)
	for _, n := range p.neighbors[normalizeName(name)] {
		if normalizeName(n) == want {
			return true
		}
	}
	return false
}

// FallbackMode returns the configured tier applied to sensitive neighborhoods
func (p *NeighborhoodPolicy) FallbackMode() models.SensitiveFallbackMode {
	return p.fallback
}
