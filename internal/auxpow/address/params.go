package address

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

const (
	namecoinPubKeyHashAddrID     byte = 52
	namecoinScriptHashAddrID     byte = 13
	namecoinTestPubKeyHashAddrID byte = 111
	namecoinTestScriptHashAddrID byte = 196

	namecoinHRP     = "nc"
	namecoinTestHRP = "tn"
)

// HRPs holds the bech32 human-readable prefixes of a chain.
type HRPs struct {
	Mainnet string
	Testnet string
}

// Params maps encodings of a source chain onto a target chain.
type Params struct {
	Source     HRPs
	Target     HRPs
	VersionMap map[byte]byte
}

// Inverse returns params converting from the target chain back to the source chain.
func (p Params) Inverse() Params {
	versions := make(map[byte]byte, len(p.VersionMap))
	for from, to := range p.VersionMap {
		versions[to] = from
	}
	return Params{
		Source:     p.Target,
		Target:     p.Source,
		VersionMap: versions,
	}
}

// NamecoinToBitcoin returns params converting Namecoin addresses of the given network to Bitcoin ones.
func NamecoinToBitcoin(network model.Network) (Params, error) {
	hrps := Params{
		Source: HRPs{Mainnet: namecoinHRP, Testnet: namecoinTestHRP},
		Target: HRPs{
			Mainnet: chaincfg.MainNetParams.Bech32HRPSegwit,
			Testnet: chaincfg.TestNet3Params.Bech32HRPSegwit,
		},
	}

	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "namecoin":
		hrps.VersionMap = map[byte]byte{
			namecoinPubKeyHashAddrID: chaincfg.MainNetParams.PubKeyHashAddrID,
			namecoinScriptHashAddrID: chaincfg.MainNetParams.ScriptHashAddrID,
		}
	case "testnet", "testnet3":
		hrps.VersionMap = map[byte]byte{
			namecoinTestPubKeyHashAddrID: chaincfg.TestNet3Params.PubKeyHashAddrID,
			namecoinTestScriptHashAddrID: chaincfg.TestNet3Params.ScriptHashAddrID,
		}
	default:
		return Params{}, fmt.Errorf("unsupported network %q", network)
	}
	return hrps, nil
}
