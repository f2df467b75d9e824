package prospect

import (
	"encoding/json"
	"fmt"
)

// Status is the pipeline stage of a prospect.
type Status int

const (
	StatusNew Status = iota
	StatusEngaged
	StatusWon
	StatusLost
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusNew, StatusEngaged, StatusWon, StatusLost}

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusEngaged:
		return "Engaged"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// ParseStatus parses the display form of a status. Matching is exact.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if st.String() == s {
			return st, nil
		}
	}
	return StatusNew, fmt.Errorf("unknown status: %s", s)
}

// StatusOrDefault parses s, falling back to StatusNew for unknown values.
func StatusOrDefault(s string) Status {
	st, err := ParseStatus(s)
	if err != nil {
		return StatusNew
	}
	return st
}

// Next cycles to the following status, wrapping around.
func (s Status) Next() Status {
	if s < StatusNew || s > StatusLost {
		return StatusNew
	}
	return Statuses[(int(s)+1)%len(Statuses)]
}

// MarshalJSON implements json.Marshaler.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
