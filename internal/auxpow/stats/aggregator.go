// Package stats accumulates per-period and cumulative miner attribution.
package stats

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

// RetargetInterval is the difficulty retarget period in blocks.
const RetargetInterval uint64 = 2016

// ErrInvalidPeriod is returned for a zero period length.
var ErrInvalidPeriod = errors.New("period must be positive")

// Color derives a stable display color from a miner name: the six hex digits preceding
// the last digit of the SHA-256 hex digest.
func Color(name string) string {
	sum := sha256.Sum256([]byte(name))
	digest := hex.EncodeToString(sum[:])
	return "#" + digest[57:63]
}

type minerState struct {
	period uint64
	total  uint64
	order  int
	color  string
}

// Aggregator counts attributed blocks per miner. A snapshot is produced at every block whose
// height is a positive multiple of the period, after which period counts reset.
// Order and color are assigned on a miner's first attributed block and never change.
type Aggregator struct {
	period      uint64
	registered  []string
	states      map[string]*minerState
	appeared    []string
	periodTotal uint64
	total       uint64
	lastHeight  uint64
}

// NewAggregator constructs an Aggregator. registered lists registry miners in registration order;
// they appear in the final ranking even if they never mined a block.
func NewAggregator(period uint64, registered []string) (*Aggregator, error) {
	if period == 0 {
		return nil, ErrInvalidPeriod
	}
	return &Aggregator{
		period:     period,
		registered: slices.Clone(registered),
		states:     make(map[string]*minerState),
	}, nil
}

// Observe attributes rec to miner and returns a snapshot if rec closes a period.
func (a *Aggregator) Observe(rec model.BlockRecord, miner string) *model.PeriodSnapshot {
	st, ok := a.states[miner]
	if !ok {
		st = &minerState{}
		a.states[miner] = st
	}
	if st.order == 0 {
		a.appeared = append(a.appeared, miner)
		st.order = len(a.appeared)
		st.color = Color(miner)
	}
	st.period++
	st.total++
	a.periodTotal++
	a.total++
	return a.advance(rec)
}

// Skip advances past a block excluded from attribution. It still closes a period at a boundary.
func (a *Aggregator) Skip(rec model.BlockRecord) *model.PeriodSnapshot {
	return a.advance(rec)
}

func (a *Aggregator) advance(rec model.BlockRecord) *model.PeriodSnapshot {
	a.lastHeight = rec.Height
	if rec.Height == 0 || rec.Height%a.period != 0 {
		return nil
	}
	defer a.resetPeriod()
	if a.periodTotal == 0 {
		return nil
	}
	snapshot := a.Snapshot(rec.Height, rec.Time)
	return &snapshot
}

func (a *Aggregator) resetPeriod() {
	for _, st := range a.states {
		st.period = 0
	}
	a.periodTotal = 0
}

// Snapshot returns the current period counts without resetting them.
func (a *Aggregator) Snapshot(height uint64, blockTime int64) model.PeriodSnapshot {
	entries := make([]model.Share, 0, len(a.appeared))
	for _, name := range a.appeared {
		st := a.states[name]
		if st.period == 0 {
			continue
		}
		entries = append(entries, model.Share{
			Miner:      name,
			Count:      st.period,
			Percentage: percentage(st.period, a.periodTotal),
			Color:      st.color,
			Order:      st.order,
		})
	}

	legend := slices.Clone(entries)
	slices.SortStableFunc(legend, func(x, y model.Share) int {
		return cmp.Compare(y.Count, x.Count)
	})

	return model.PeriodSnapshot{
		Height:  height,
		Time:    blockTime,
		Total:   a.periodTotal,
		Entries: entries,
		Legend:  legend,
	}
}

func percentage(count, total uint64) string {
	return fmt.Sprintf("%.2f%%", float64(count)/float64(total)*100)
}

// Ranking returns cumulative totals: miners that appeared by total descending (ties by order),
// then registered miners that never appeared in registration order.
func (a *Aggregator) Ranking() model.Ranking {
	entries := make([]model.RankEntry, 0, len(a.appeared)+len(a.registered))
	for _, name := range a.appeared {
		st := a.states[name]
		entries = append(entries, model.RankEntry{
			Miner: name,
			Total: st.total,
			Color: st.color,
			Order: st.order,
		})
	}
	slices.SortStableFunc(entries, func(x, y model.RankEntry) int {
		return cmp.Compare(y.Total, x.Total)
	})

	for _, name := range a.registered {
		if st, ok := a.states[name]; ok && st.order > 0 {
			continue
		}
		entries = append(entries, model.RankEntry{
			Miner: name,
			Color: Color(name),
		})
	}

	return model.Ranking{
		Height:  a.lastHeight,
		Total:   a.total,
		Entries: entries,
	}
}
