// Package dataset stores extracted blocks as an append-only CSV file.
package dataset

import (
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

var (
	// ErrHeaderMismatch is returned when a dataset does not start with the expected header.
	ErrHeaderMismatch = errors.New("dataset header mismatch")
	// ErrCorrupt is returned when an unreadable row is followed by further rows.
	ErrCorrupt = errors.New("dataset corrupt")
	// ErrOutOfOrder is returned when appended rows do not continue the stored heights.
	ErrOutOfOrder = errors.New("rows out of order")
)

// Header is the first row of every dataset.
var Header = []string{"height", "time", "bits", "coinbase", "address"}

func formatRecord(rec model.BlockRecord) []string {
	return []string{
		strconv.FormatUint(rec.Height, 10),
		strconv.FormatInt(rec.Time, 10),
		rec.Bits,
		hex.EncodeToString(rec.Coinbase),
		rec.Address,
	}
}

func parseRecord(fields []string) (model.BlockRecord, error) {
	if len(fields) != len(Header) {
		return model.BlockRecord{}, fmt.Errorf("got %d fields, want %d", len(fields), len(Header))
	}
	height, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return model.BlockRecord{}, fmt.Errorf("height: %w", err)
	}
	blockTime, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return model.BlockRecord{}, fmt.Errorf("time: %w", err)
	}
	coinbase, err := hex.DecodeString(fields[3])
	if err != nil {
		return model.BlockRecord{}, fmt.Errorf("coinbase: %w", err)
	}
	if len(coinbase) == 0 {
		coinbase = nil
	}
	return model.BlockRecord{
		Height:   height,
		Time:     blockTime,
		Bits:     fields[2],
		Coinbase: coinbase,
		Address:  fields[4],
	}, nil
}

// Records iterates the rows of a dataset in file order.
// The sequence ends after the first error.
func Records(r io.Reader) iter.Seq2[model.BlockRecord, error] {
	return func(yield func(model.BlockRecord, error) bool) {
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = len(Header)
		reader.ReuseRecord = true

		header, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			yield(model.BlockRecord{}, fmt.Errorf("read header: %w", err))
			return
		}
		if !slices.Equal(header, Header) {
			yield(model.BlockRecord{}, fmt.Errorf("%w: %v", ErrHeaderMismatch, header))
			return
		}

		for {
			fields, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(model.BlockRecord{}, fmt.Errorf("read row: %w", err))
				return
			}
			rec, err := parseRecord(fields)
			if err != nil {
				line, _ := reader.FieldPos(0)
				yield(model.BlockRecord{}, fmt.Errorf("parse row at line %d: %w", line, err))
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}
