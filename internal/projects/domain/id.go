package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewRecordID generates a record id, e.g. "1756684800000-a1b2c3d4e5f60718".
// The millisecond timestamp keeps ids roughly sortable by creation time;
// the 64-bit random suffix keeps ids generated in the same millisecond
// distinct.
func NewRecordID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b)), nil
}
