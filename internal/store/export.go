package store

import (
	"encoding/json"
	"os"
)

// ExportJSON writes a stored run's metadata to path.
func ExportJSON(path string, meta *RunMetadata) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(meta)
}

// ExportJSONStdout writes a stored run's metadata to standard output.
func ExportJSONStdout(meta *RunMetadata) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(meta)
}
