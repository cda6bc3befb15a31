// Package address re-encodes base58Check and bech32 addresses between chains.
package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

var (
	// ErrInvalidEncoding is returned for bech32 input that does not decode.
	ErrInvalidEncoding = errors.New("invalid bech32 encoding")
	// ErrUnknownAddressVersion is returned for base58Check input with an unmapped version byte.
	ErrUnknownAddressVersion = errors.New("unknown address version")
	// ErrUnrecognizedFormat is returned for input that is neither bech32 nor base58Check.
	ErrUnrecognizedFormat = errors.New("unrecognized address format")
)

// Codec converts addresses encoded under source chain params into target chain params.
type Codec struct {
	params Params
}

// NewCodec builds a Codec for the given params.
func NewCodec(params Params) *Codec {
	return &Codec{params: params}
}

// Reencode returns input encoded for the target chain.
func (c *Codec) Reencode(input string) (string, error) {
	if hrp, ok := c.targetHRP(input); ok {
		return reencodeBech32(input, hrp)
	}

	payload, version, err := base58.CheckDecode(input)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnrecognizedFormat, input, err)
	}
	target, ok := c.params.VersionMap[version]
	if !ok {
		return "", fmt.Errorf("%w: %d in %q", ErrUnknownAddressVersion, version, input)
	}
	return base58.CheckEncode(payload, target), nil
}

// targetHRP matches the literal lowercase source prefix and returns the corresponding target prefix.
// Base58 strings may begin with the same letters in other cases, so the match is case sensitive.
func (c *Codec) targetHRP(input string) (string, bool) {
	switch {
	case c.params.Source.Mainnet != "" && strings.HasPrefix(input, c.params.Source.Mainnet+"1"):
		return c.params.Target.Mainnet, true
	case c.params.Source.Testnet != "" && strings.HasPrefix(input, c.params.Source.Testnet+"1"):
		return c.params.Target.Testnet, true
	default:
		return "", false
	}
}

// reencodeBech32 swaps the prefix and keeps the 5-bit payload and checksum variant.
func reencodeBech32(input, hrp string) (string, error) {
	_, data, version, err := bech32.DecodeGeneric(input)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidEncoding, input, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %q: empty payload", ErrInvalidEncoding, input)
	}

	var out string
	switch version {
	case bech32.Version0:
		out, err = bech32.Encode(hrp, data)
	case bech32.VersionM:
		out, err = bech32.EncodeM(hrp, data)
	default:
		return "", fmt.Errorf("%w: %q: unknown checksum variant", ErrInvalidEncoding, input)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidEncoding, input, err)
	}
	return out, nil
}
