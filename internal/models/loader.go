package models

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iainktaylor/spotify-converter/internal/shared"
)

// ParseLibrary decodes a Spotify library export JSON document.
func ParseLibrary(data []byte) (*Library, error) {
	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("%w: failed to parse library export: %v", shared.ErrInvalidInput, err)
	}
	return &lib, nil
}

// LoadLibrary reads and parses a library export from the given file path.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return ParseLibrary(data)
}
