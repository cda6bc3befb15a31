// Package model defines domain models for auxpow miner statistics.
package model

import "time"

// BlockRecord is a single extracted block, persisted as one dataset row.
type BlockRecord struct {
	Height   uint64
	Time     int64
	Bits     string
	Coinbase []byte
	Address  string
}

// HasAuxPow reports whether the block carried merge-mining data.
func (r BlockRecord) HasAuxPow() bool {
	return len(r.Coinbase) > 0 || r.Address != ""
}

// Timestamp returns the block time in UTC.
func (r BlockRecord) Timestamp() time.Time {
	return time.Unix(r.Time, 0).UTC()
}
