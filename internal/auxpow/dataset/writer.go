package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
	"go.uber.org/zap"
)

// Writer appends pages of rows to a dataset file. Each page is written with a single
// write followed by fsync, so a crash leaves at most one torn trailing row.
type Writer struct {
	file   *os.File
	offset int64
	next   uint64
	logger *zap.Logger
}

// Open opens or creates the dataset at path. A new file gets the header row; an existing one
// is scanned to find the next height, and a torn trailing row is truncated.
func Open(path string, logger *zap.Logger) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	w := &Writer{
		file:   file,
		logger: logger.With(zap.String("path", path)),
	}
	if err := w.recover(); err != nil {
		_ = file.Close()
		return nil, err
	}
	return w, nil
}

func (w *Writer) recover() error {
	info, err := w.file.Stat()
	if err != nil {
		return fmt.Errorf("stat dataset: %w", err)
	}
	size := info.Size()

	state, err := scan(w.file, size)
	if err != nil {
		return err
	}
	if state.end < size {
		w.logger.Warn("truncating torn dataset row",
			zap.Int64("offset", state.end),
			zap.Int64("size", size),
		)
		if err := w.file.Truncate(state.end); err != nil {
			return fmt.Errorf("truncate dataset: %w", err)
		}
	}

	w.offset = state.end
	if w.offset == 0 {
		if err := w.write(renderRows(nil, true)); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if state.rows > 0 {
		w.next = state.last + 1
	}
	w.logger.Info("dataset opened", zap.Int("rows", state.rows), zap.Uint64("next_height", w.next))
	return nil
}

type scanState struct {
	end  int64
	last uint64
	rows int
}

// scan returns the offset just past the last complete row. Rows must run contiguously from height 0.
func scan(r io.ReaderAt, size int64) (scanState, error) {
	var state scanState
	if size == 0 {
		return state, nil
	}

	tail := make([]byte, 1)
	if _, err := r.ReadAt(tail, size-1); err != nil {
		return state, fmt.Errorf("read dataset tail: %w", err)
	}
	terminated := tail[0] == '\n'

	reader := csv.NewReader(io.NewSectionReader(r, 0, size))
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	var (
		torn      bool
		lastStart int64
		prevLast  uint64
	)
	for {
		start := reader.InputOffset()
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if torn {
			return scanState{}, fmt.Errorf("%w: unreadable row at offset %d", ErrCorrupt, state.end)
		}
		if err != nil {
			torn = true
			continue
		}
		if start == 0 {
			if !slices.Equal(fields, Header) {
				if !terminated && reader.InputOffset() == size {
					torn = true
					continue
				}
				return scanState{}, fmt.Errorf("%w: %v", ErrHeaderMismatch, fields)
			}
			lastStart, state.end = start, reader.InputOffset()
			continue
		}
		rec, err := parseRecord(fields)
		if err != nil {
			torn = true
			continue
		}
		var want uint64
		if state.rows > 0 {
			want = state.last + 1
		}
		if rec.Height != want {
			return scanState{}, fmt.Errorf("%w: got height %d, want %d", ErrCorrupt, rec.Height, want)
		}
		prevLast = state.last
		lastStart, state.end = start, reader.InputOffset()
		state.last = rec.Height
		state.rows++
	}

	// A final row without its newline may have been cut inside its last field.
	if state.end == size && !terminated {
		state.end = lastStart
		if state.rows > 0 {
			state.rows--
			state.last = prevLast
		}
	}
	return state, nil
}

func renderRows(records []model.BlockRecord, header bool) []byte {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if header {
		_ = cw.Write(Header)
	}
	for _, rec := range records {
		_ = cw.Write(formatRecord(rec))
	}
	cw.Flush()
	return buf.Bytes()
}

// Next returns the height the next appended row must have.
func (w *Writer) Next() uint64 {
	return w.next
}

// WritePage appends records, which must continue from Next with consecutive heights.
// Either the whole page is durable on return or the file is restored to its previous length.
func (w *Writer) WritePage(records []model.BlockRecord) error {
	if len(records) == 0 {
		return nil
	}
	for i, rec := range records {
		if want := w.next + uint64(i); rec.Height != want {
			return fmt.Errorf("%w: got height %d, want %d", ErrOutOfOrder, rec.Height, want)
		}
	}

	if err := w.write(renderRows(records, false)); err != nil {
		return err
	}
	w.next = records[len(records)-1].Height + 1
	return nil
}

func (w *Writer) write(data []byte) error {
	n, err := w.file.WriteAt(data, w.offset)
	if err == nil {
		err = w.file.Sync()
	}
	if err != nil {
		if truncErr := w.file.Truncate(w.offset); truncErr != nil {
			w.logger.Error("restore dataset length", zap.Error(truncErr))
		}
		return fmt.Errorf("write dataset (%d of %d bytes): %w", n, len(data), err)
	}
	w.offset += int64(n)
	return nil
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	return w.file.Close()
}
