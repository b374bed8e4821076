package event

import "encoding/json"

// DecodePayload returns the payload as T. Payloads published in-process are
// already T; payloads read back from JSON (the dead-letter file) are
// converted with a marshal round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
