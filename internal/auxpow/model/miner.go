package model

// UnknownMiner is the pseudo-miner for blocks no registry entry matches.
const UnknownMiner = "Unknown"

// MinerProfile describes how a known miner can be recognized in a block.
type MinerProfile struct {
	Name        string
	Coinbase    []string
	CoinbaseHex []string
	Address     []string
}
