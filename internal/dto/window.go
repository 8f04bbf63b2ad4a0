package dto

import "time"

// Window is an inclusive [Start, End] time range. A nil *Window means
// all time wherever one is accepted.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w *Window) Contains(t time.Time) bool {
	if w == nil {
		return true
	}
	return !t.Before(w.Start) && !t.After(w.End)
}
