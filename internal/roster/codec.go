package roster

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Marshal encodes the records as the JSON array stored in the slot. An empty
// roster encodes as [] rather than null.
func Marshal(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode roster: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a slot snapshot. Missing fields decode as empty strings.
func Unmarshal(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return records, nil
}
