package dto

// BackfillResult counts what a payment title backfill touched.
type BackfillResult struct {
	Scanned int  `json:"scanned"`
	Fixed   int  `json:"fixed"`
	Skipped int  `json:"skipped"`
	DryRun  bool `json:"dryRun"`
}
