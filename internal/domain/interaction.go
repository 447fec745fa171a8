package domain

import "time"

// Interaction is one completed conversation turn retained in history.
type Interaction struct {
	ID        string
	Input     string
	Response  string
	Timestamp time.Time
	Metadata  map[string]string
}
