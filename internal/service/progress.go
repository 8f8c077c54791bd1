package service

import "github.com/shopspring/decimal"

// ProgressPercentage derives the completion percentage of a project
// from live task counts. Pure function, no caching: every read path
// (project list, project detail, progress endpoint) goes through here
// so they always agree.
func ProgressPercentage(total, completed int64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(completed).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}
