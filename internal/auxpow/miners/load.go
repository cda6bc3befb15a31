package miners

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

// ErrInvalidRegistry is returned when the registry document is not an object of profiles.
var ErrInvalidRegistry = errors.New("invalid miner registry")

type profileDocument struct {
	Coinbase    []string `json:"coinbase"`
	CoinbaseHex []string `json:"coinbase_hex"`
	Address     []string `json:"address"`
}

// LoadFile reads a registry from a JSON file.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a JSON object mapping miner name to {coinbase, coinbase_hex, address}.
// Key order in the document is the registration order. An "Unknown" key is skipped.
func Load(r io.Reader) (*Registry, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var profiles []model.MinerProfile
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrInvalidRegistry, tok)
		}
		var doc profileDocument
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: miner %q: %v", ErrInvalidRegistry, name, err)
		}
		if name == model.UnknownMiner {
			continue
		}
		profiles = append(profiles, model.MinerProfile{
			Name:        name,
			Coinbase:    doc.Coinbase,
			CoinbaseHex: doc.CoinbaseHex,
			Address:     doc.Address,
		})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return NewRegistry(profiles...)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrInvalidRegistry, want, tok)
	}
	return nil
}
