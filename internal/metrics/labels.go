// Package metrics exposes application metrics collectors.
package metrics

import "github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"

const namespace = "auxpowstats"

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func networkLabel(network model.Network) model.Network {
	if network == "" {
		return "unknown"
	}
	return network
}
