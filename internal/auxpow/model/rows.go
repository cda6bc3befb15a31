package model

import "time"

// PeriodShareRow is a snapshot entry persisted to ClickHouse.
type PeriodShareRow struct {
	Network     Network
	Height      uint64
	Timestamp   time.Time
	Miner       string
	Count       uint64
	PeriodTotal uint64
	Share       float64
	Order       uint32
	Color       string
}

// RankingRow is a final ranking entry persisted to ClickHouse.
type RankingRow struct {
	Network Network
	RunAt   time.Time
	Height  uint64
	Rank    uint32
	Miner   string
	Total   uint64
	Color   string
}
