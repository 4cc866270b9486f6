package backend

import (
	"encoding/json"
	"fmt"
	"io"
)

// decodeJSON reads and decodes a JSON body.
func decodeJSON(r io.Reader, out any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
