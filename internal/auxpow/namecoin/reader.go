// Package namecoin reads block metadata from a Namecoin node over batched JSON-RPC.
package namecoin

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/goodnatureofminers/auxpowstats/pkg/safe"
	"go.uber.org/zap"
)

// ErrInvalidPageSize is yielded by Paginate when the page size is zero.
var ErrInvalidPageSize = errors.New("page size must be positive")

// ChainReadError reports a failed page. Reads of confirmed heights are idempotent,
// so the page can be retried from First.
type ChainReadError struct {
	First uint64
	Last  uint64
	Err   error
}

func (e *ChainReadError) Error() string {
	return fmt.Sprintf("read blocks %d..%d: %v", e.First, e.Last, e.Err)
}

func (e *ChainReadError) Unwrap() error {
	return e.Err
}

// Reader pages through block heights using batched RPC round trips.
type Reader struct {
	client NodeClient
	logger *zap.Logger
}

// NewReader constructs a Reader.
func NewReader(client NodeClient, logger *zap.Logger) *Reader {
	return &Reader{
		client: client,
		logger: logger,
	}
}

// Tip returns the height of the best block.
func (r *Reader) Tip(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := r.client.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// Paginate yields pages covering start..end inclusive, pageSize heights at a time.
// The last page is clipped to end. A failed page is yielded as a *ChainReadError and ends the sequence;
// callers resume by calling Paginate again from the failed page's first height.
func (r *Reader) Paginate(ctx context.Context, start, end, pageSize uint64) iter.Seq2[[]Block, error] {
	return func(yield func([]Block, error) bool) {
		if pageSize == 0 {
			yield(nil, ErrInvalidPageSize)
			return
		}
		for first := start; first <= end; {
			last := pageLast(first, end, pageSize)
			blocks, err := r.ReadPage(ctx, first, last)
			if !yield(blocks, err) || err != nil {
				return
			}
			if last == end {
				return
			}
			first = last + 1
		}
	}
}

func pageLast(first, end, pageSize uint64) uint64 {
	last := first + pageSize - 1
	if last < first || last > end {
		return end
	}
	return last
}

// ReadPage fetches blocks first..last inclusive: one getblockhash batch, then one getblock batch.
// Results are matched to heights by position.
func (r *Reader) ReadPage(ctx context.Context, first, last uint64) ([]Block, error) {
	blocks, err := r.readPage(ctx, first, last)
	if err != nil {
		return nil, &ChainReadError{First: first, Last: last, Err: err}
	}
	return blocks, nil
}

func (r *Reader) readPage(ctx context.Context, first, last uint64) ([]Block, error) {
	if last < first {
		return nil, fmt.Errorf("invalid page bounds %d..%d", first, last)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	heights := make([]int64, 0, last-first+1)
	for height := first; ; height++ {
		h, err := safe.Int64(height)
		if err != nil {
			return nil, fmt.Errorf("height %d: %w", height, err)
		}
		heights = append(heights, h)
		if height == last {
			break
		}
	}

	hashes, err := r.client.GetBlockHashes(heights)
	if err != nil {
		return nil, fmt.Errorf("get block hashes: %w", err)
	}
	if len(hashes) != len(heights) {
		return nil, fmt.Errorf("got %d hashes for %d heights", len(hashes), len(heights))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raws, err := r.client.GetBlocks(hashes)
	if err != nil {
		return nil, fmt.Errorf("get blocks: %w", err)
	}
	if len(raws) != len(hashes) {
		return nil, fmt.Errorf("got %d blocks for %d hashes", len(raws), len(hashes))
	}

	blocks := make([]Block, 0, len(raws))
	for i, raw := range raws {
		block, err := DecodeBlock(raw)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", hashes[i], err)
		}
		if want := first + uint64(i); block.Height != want {
			return nil, fmt.Errorf("block %s has height %d, want %d", hashes[i], block.Height, want)
		}
		blocks = append(blocks, block)
	}

	r.logger.Debug("page read", zap.Uint64("first", first), zap.Uint64("last", last))
	return blocks, nil
}
