package model

type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)
