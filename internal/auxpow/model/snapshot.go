package model

import "time"

// Share is one miner's slice of a period.
type Share struct {
	Miner      string `json:"miner"`
	Count      uint64 `json:"count"`
	Percentage string `json:"percentage"`
	Color      string `json:"color"`
	Order      int    `json:"order"`
}

// PeriodSnapshot summarizes attribution for one retarget period.
// Entries are ordered by first appearance, Legend by count.
type PeriodSnapshot struct {
	Height  uint64  `json:"height"`
	Time    int64   `json:"time"`
	Total   uint64  `json:"total"`
	Entries []Share `json:"entries"`
	Legend  []Share `json:"legend"`
}

// Timestamp returns the boundary block time in UTC.
func (s PeriodSnapshot) Timestamp() time.Time {
	return time.Unix(s.Time, 0).UTC()
}

// RankEntry is one line of the cumulative ranking.
type RankEntry struct {
	Miner string `json:"miner"`
	Total uint64 `json:"total"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// Ranking is the terminal cumulative summary of a run.
type Ranking struct {
	Height  uint64      `json:"height"`
	Total   uint64      `json:"total"`
	Entries []RankEntry `json:"entries"`
}
