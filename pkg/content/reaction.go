package content

import (
	"encoding/json"
	"fmt"
)

// Reaction is the viewer's thumb on an item. Up and Down are mutually
// exclusive by construction.
type Reaction int8

const (
	None Reaction = iota
	Up
	Down
)

func (r Reaction) String() string {
	switch r {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return ""
	}
}

// Toggle returns the reaction after the viewer clicks d.
func (r Reaction) Toggle(d Reaction) Reaction {
	if r == d {
		return None
	}
	return d
}

func ParseReaction(s string) (Reaction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "":
		return None, nil
	}
	return None, fmt.Errorf("unknown direction: %q", s)
}

func (r Reaction) MarshalJSON() ([]byte, error) {
	if r == None {
		return []byte("null"), nil
	}
	return json.Marshal(r.String())
}

func (r *Reaction) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = None
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseReaction(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
