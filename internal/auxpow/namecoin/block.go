package namecoin

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/auxpowstats/pkg/safe"
)

// ErrMalformedBlock is returned when a getblock result lacks height or time.
var ErrMalformedBlock = errors.New("malformed block")

// Block is a block as reported by the node, before payout address normalization.
type Block struct {
	Height        uint64
	Time          int64
	Bits          string
	Coinbase      []byte
	PayoutAddress string
	AuxPow        bool
}

// verbatim keeps a JSON scalar as text: strings unquoted, numbers as written.
type verbatim string

func (v *verbatim) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = verbatim(s)
		return nil
	}
	*v = verbatim(bytes.TrimSpace(data))
	return nil
}

type blockResult struct {
	Height *int64          `json:"height"`
	Time   *int64          `json:"time"`
	Bits   verbatim        `json:"bits"`
	AuxPow json.RawMessage `json:"auxpow"`
}

type auxPowResult struct {
	Tx struct {
		Vin  []btcjson.Vin `json:"vin"`
		Vout []struct {
			ScriptPubKey struct {
				Address   string   `json:"address"`
				Addresses []string `json:"addresses"`
			} `json:"scriptPubKey"`
		} `json:"vout"`
	} `json:"tx"`
}

// DecodeBlock parses a verbose getblock result.
// Absent or unusable auxpow data yields a block without merge-mining data rather than an error.
func DecodeBlock(raw json.RawMessage) (Block, error) {
	var res blockResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return Block{}, fmt.Errorf("%w: %v", ErrMalformedBlock, err)
	}
	if res.Height == nil || res.Time == nil {
		return Block{}, fmt.Errorf("%w: missing height or time", ErrMalformedBlock)
	}
	height, err := safe.Uint64(*res.Height)
	if err != nil {
		return Block{}, fmt.Errorf("%w: %v", ErrMalformedBlock, err)
	}

	block := Block{
		Height: height,
		Time:   *res.Time,
		Bits:   string(res.Bits),
	}
	if coinbase, address, ok := decodeAuxPow(res.AuxPow); ok {
		block.AuxPow = true
		block.Coinbase = coinbase
		block.PayoutAddress = address
	}
	return block, nil
}

func decodeAuxPow(raw json.RawMessage) ([]byte, string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, "", false
	}
	var aux auxPowResult
	if err := json.Unmarshal(raw, &aux); err != nil {
		return nil, "", false
	}
	if len(aux.Tx.Vin) == 0 {
		return nil, "", false
	}
	coinbase, err := hex.DecodeString(aux.Tx.Vin[0].Coinbase)
	if err != nil {
		return nil, "", false
	}

	// P2PK payouts predate address annotation and carry no address.
	var address string
	if len(aux.Tx.Vout) > 0 {
		spk := aux.Tx.Vout[0].ScriptPubKey
		switch {
		case len(spk.Addresses) > 0:
			address = spk.Addresses[0]
		case spk.Address != "":
			address = spk.Address
		}
	}
	return coinbase, address, true
}
