package save

import (
	"encoding/base64"
	"fmt"

	"github.com/lukeberry99/duck/internal/config"
)

// Export renders a snapshot as a portable base64 string so players can move
// a save between machines by copy-paste.
func Export(s Snapshot) (string, error) {
	b, err := Encode(s)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Import parses an exported string back into a validated snapshot.
func Import(encoded string, bal config.Balance) (Snapshot, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decode export string: %w", err)
	}
	return Decode(raw, bal)
}
