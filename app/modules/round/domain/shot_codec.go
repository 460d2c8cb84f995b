package rounddomain

import (
	"encoding/json"
	"fmt"
)

// shotEnvelope is the persisted, tagged form of a Shot.
type shotEnvelope struct {
	Type ShotKind `json:"type"`
}

// EncodeShots writes shots as a JSON array of objects tagged with "type".
func EncodeShots(shots []Shot) ([]byte, error) {
	out := make([]map[string]any, 0, len(shots))
	for _, s := range shots {
		if s == nil {
			continue
		}
		body, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("marshal %s shot: %w", s.Kind(), err)
		}
		fields := map[string]any{}
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, fmt.Errorf("flatten %s shot: %w", s.Kind(), err)
		}
		fields["type"] = s.Kind()
		out = append(out, fields)
	}
	return json.Marshal(out)
}

// DecodeShots parses a tagged JSON array. Entries with an unknown tag, a
// field of the wrong type, or a failed validation are dropped. Only a
// document that is not a JSON array at all returns an error.
func DecodeShots(data []byte) ([]Shot, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode shot array: %w", err)
	}

	shots := make([]Shot, 0, len(raws))
	for _, raw := range raws {
		if s, ok := decodeShot(raw); ok {
			shots = append(shots, s)
		}
	}
	return shots, nil
}

func decodeShot(raw json.RawMessage) (Shot, bool) {
	var env shotEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false
	}

	var s Shot
	switch env.Type {
	case ShotKindTee:
		var t TeeShot
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, false
		}
		s = t
	case ShotKindApproach:
		var a ApproachShot
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, false
		}
		s = a
	case ShotKindPutt:
		var p Putt
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, false
		}
		s = p
	default:
		return nil, false
	}

	if !s.valid() {
		return nil, false
	}
	return s, true
}
