package namecoin

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient issues JSON-RPC calls to the node. Slice arguments are sent as a single batch.
	NodeClient interface {
		GetBlockCount() (int64, error)
		GetBlockHashes(heights []int64) ([]*chainhash.Hash, error)
		GetBlocks(hashes []*chainhash.Hash) ([]json.RawMessage, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
