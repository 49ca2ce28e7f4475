package domain

import "fmt"

type DesiredState string

const (
	StatePresent DesiredState = "present"
	StateAbsent  DesiredState = "absent"
)

// ParseDesiredState accepts exactly "present" or "absent". Empty input means present.
func ParseDesiredState(raw string) (DesiredState, error) {
	switch state := DesiredState(raw); state {
	case "":
		return StatePresent, nil
	case StatePresent, StateAbsent:
		return state, nil
	default:
		return "", fmt.Errorf("unsupported state %q (want present|absent)", raw)
	}
}
