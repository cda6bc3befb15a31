// Package miners attributes blocks to known mining entities.
package miners

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

var (
	// ErrDuplicateMiner is returned when two profiles share a name.
	ErrDuplicateMiner = errors.New("duplicate miner")
	// ErrReservedName is returned for profiles named after the unknown pseudo-miner or with no name.
	ErrReservedName = errors.New("reserved miner name")
)

// Registry is an ordered catalog of miner profiles. Profiles are matched in registration order.
type Registry struct {
	profiles []model.MinerProfile
}

// NewRegistry builds a registry preserving the order of profiles.
// Hex signatures are lowercased to match dataset encoding.
func NewRegistry(profiles ...model.MinerProfile) (*Registry, error) {
	seen := make(map[string]struct{}, len(profiles))
	registered := make([]model.MinerProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.Name == "" || p.Name == model.UnknownMiner {
			return nil, fmt.Errorf("%w: %q", ErrReservedName, p.Name)
		}
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMiner, p.Name)
		}
		seen[p.Name] = struct{}{}

		hexSigs := make([]string, 0, len(p.CoinbaseHex))
		for _, sig := range p.CoinbaseHex {
			hexSigs = append(hexSigs, strings.ToLower(sig))
		}
		p.CoinbaseHex = hexSigs
		registered = append(registered, p)
	}
	return &Registry{profiles: registered}, nil
}

// Names returns miner names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		names = append(names, p.Name)
	}
	return names
}

// Len returns the number of registered miners.
func (r *Registry) Len() int {
	return len(r.profiles)
}

// Classify returns the first profile, in registration order, with an ascii signature contained
// in ascii, a hex signature contained in rawHex, or an address signature contained in address,
// checked in that order per profile. An empty signature matches any input.
func (r *Registry) Classify(ascii []byte, rawHex string, address string) string {
	for _, p := range r.profiles {
		if matchBytes(ascii, p.Coinbase) ||
			matchString(rawHex, p.CoinbaseHex) ||
			matchString(address, p.Address) {
			return p.Name
		}
	}
	return model.UnknownMiner
}

func matchBytes(haystack []byte, signatures []string) bool {
	for _, sig := range signatures {
		if bytes.Contains(haystack, []byte(sig)) {
			return true
		}
	}
	return false
}

func matchString(haystack string, signatures []string) bool {
	for _, sig := range signatures {
		if strings.Contains(haystack, sig) {
			return true
		}
	}
	return false
}
