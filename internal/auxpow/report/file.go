package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ake-persson/mapslice-json"
	"github.com/goccy/go-json"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

// RankingFile is the name of the ranking document in the output directory.
const RankingFile = "ranking.json"

// FileReporter writes one JSON document per snapshot, named
// <height zero-padded to 8>__<YYYY_MM_DD>.json, and a ranking document.
type FileReporter struct {
	dir string
}

type rankedMiner struct {
	Total uint64 `json:"total"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

type rankingDocument struct {
	Height uint64            `json:"height"`
	Total  uint64            `json:"total"`
	Miners mapslice.MapSlice `json:"miners"`
}

// NewFileReporter creates dir if needed.
func NewFileReporter(dir string) (*FileReporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &FileReporter{dir: dir}, nil
}

// SnapshotFileName returns the file name used for snapshot.
func SnapshotFileName(snapshot model.PeriodSnapshot) string {
	return fmt.Sprintf("%08d__%s.json", snapshot.Height, snapshot.Timestamp().Format("2006_01_02"))
}

// ReportSnapshot writes the snapshot document.
func (r *FileReporter) ReportSnapshot(_ context.Context, snapshot model.PeriodSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot %d: %w", snapshot.Height, err)
	}
	return r.write(SnapshotFileName(snapshot), data)
}

// ReportRanking writes the ranking with miners keyed by name in rank order.
func (r *FileReporter) ReportRanking(_ context.Context, ranking model.Ranking) error {
	doc := rankingDocument{
		Height: ranking.Height,
		Total:  ranking.Total,
		Miners: make(mapslice.MapSlice, 0, len(ranking.Entries)),
	}
	for _, entry := range ranking.Entries {
		doc.Miners = append(doc.Miners, mapslice.MapItem{
			Key:   entry.Miner,
			Value: rankedMiner{Total: entry.Total, Color: entry.Color, Order: entry.Order},
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ranking: %w", err)
	}
	return r.write(RankingFile, data)
}

// write replaces name atomically.
func (r *FileReporter) write(name string, data []byte) error {
	tmp, err := os.CreateTemp(r.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(r.dir, name)); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}
