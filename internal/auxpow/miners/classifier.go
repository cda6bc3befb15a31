package miners

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

// NoAuxPowPolicy decides how blocks without merge-mining data are attributed.
type NoAuxPowPolicy string

const (
	// PolicyClassify matches no-auxpow blocks against the registry like any other block.
	PolicyClassify NoAuxPowPolicy = "classify"
	// PolicyUnknown attributes no-auxpow blocks to the unknown pseudo-miner.
	PolicyUnknown NoAuxPowPolicy = "unknown"
	// PolicyExclude leaves no-auxpow blocks out of the statistics.
	PolicyExclude NoAuxPowPolicy = "exclude"
)

// ParseNoAuxPowPolicy validates a policy name.
func ParseNoAuxPowPolicy(s string) (NoAuxPowPolicy, error) {
	switch p := NoAuxPowPolicy(s); p {
	case PolicyClassify, PolicyUnknown, PolicyExclude:
		return p, nil
	default:
		return "", fmt.Errorf("unknown no-auxpow policy %q", s)
	}
}

// Classifier attributes dataset records using a registry and a no-auxpow policy.
type Classifier struct {
	registry *Registry
	policy   NoAuxPowPolicy
}

// NewClassifier constructs a Classifier.
func NewClassifier(registry *Registry, policy NoAuxPowPolicy) *Classifier {
	return &Classifier{
		registry: registry,
		policy:   policy,
	}
}

// Attribute returns the miner for rec. ok is false when the block is excluded from statistics.
func (c *Classifier) Attribute(rec model.BlockRecord) (miner string, ok bool) {
	if !rec.HasAuxPow() {
		switch c.policy {
		case PolicyUnknown:
			return model.UnknownMiner, true
		case PolicyExclude:
			return "", false
		}
	}
	return c.registry.Classify(rec.Coinbase, hex.EncodeToString(rec.Coinbase), rec.Address), true
}
