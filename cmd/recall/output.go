package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Results print as indented JSON so the orchestrating agent can parse
// them; anything human-facing goes through the error path instead.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
