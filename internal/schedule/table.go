package schedule

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTable reads a schedule table from a JSON file shaped as
// {"<parish name>": [{"category": ..., "time": ...}, ...], ...}.
// Keys are normalized on load, so the file may be keyed by display
// names; entries filed under a name that normalizes to the empty
// string are dropped.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule table: %w", err)
	}

	var raw map[string][]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding schedule table %s: %w", path, err)
	}

	table := make(Table, len(raw))
	for name, entries := range raw {
		key := Normalize(name)
		if key == "" {
			continue
		}
		table[key] = append(table[key], entries...)
	}
	return table, nil
}
