package namecoin

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

// getblock verbosity returning the decoded header fields and auxpow.
const blockVerbosity = "1"

// RPCClient wraps a btcd batch-mode client: every method queues its calls and sends them
// in one HTTP round trip. Each round trip is observed by rpcMetrics.
type RPCClient struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented client. client must be created with rpcclient.NewBatch.
func NewRPCClient(client *rpcclient.Client, rpcMetrics RPCMetrics) *RPCClient {
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockCount returns the height of the best block.
func (r *RPCClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()

	future := r.client.GetBlockCountAsync()
	if err = r.client.Send(); err != nil {
		return 0, fmt.Errorf("send getblockcount: %w", err)
	}
	return future.Receive()
}

// GetBlockHashes resolves heights to hashes, preserving order.
func (r *RPCClient) GetBlockHashes(heights []int64) (hashes []*chainhash.Hash, err error) {
	if len(heights) == 0 {
		return nil, nil
	}
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash_batch", err, started)
	}()

	futures := make([]rpcclient.FutureGetBlockHashResult, 0, len(heights))
	for _, height := range heights {
		futures = append(futures, r.client.GetBlockHashAsync(height))
	}
	if err = r.client.Send(); err != nil {
		return nil, fmt.Errorf("send getblockhash batch: %w", err)
	}

	hashes = make([]*chainhash.Hash, 0, len(futures))
	for i, future := range futures {
		hash, receiveErr := future.Receive()
		if receiveErr != nil {
			return nil, fmt.Errorf("getblockhash %d: %w", heights[i], receiveErr)
		}
		hashes = append(hashes, hash)
	}
	return hashes, nil
}

// GetBlocks fetches verbose blocks, preserving order. The raw results are returned
// because btcjson has no auxpow field.
func (r *RPCClient) GetBlocks(hashes []*chainhash.Hash) (blocks []json.RawMessage, err error) {
	if len(hashes) == 0 {
		return nil, nil
	}
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_batch", err, started)
	}()

	verbosity := json.RawMessage(blockVerbosity)
	futures := make([]rpcclient.FutureRawResult, 0, len(hashes))
	for _, hash := range hashes {
		param := json.RawMessage(strconv.Quote(hash.String()))
		futures = append(futures, r.client.RawRequestAsync("getblock", []json.RawMessage{param, verbosity}))
	}
	if err = r.client.Send(); err != nil {
		return nil, fmt.Errorf("send getblock batch: %w", err)
	}

	blocks = make([]json.RawMessage, 0, len(futures))
	for i, future := range futures {
		raw, receiveErr := future.Receive()
		if receiveErr != nil {
			return nil, fmt.Errorf("getblock %s: %w", hashes[i], receiveErr)
		}
		blocks = append(blocks, raw)
	}
	return blocks, nil
}
