package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const orderNumberPrefix = "DM"

// GenerateOrderNumber returns a human-readable, globally unique order number:
// a fixed prefix, the millisecond timestamp in base36 and 3 random bytes.
func GenerateOrderNumber() (string, error) {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating order number: %w", err)
	}

	return orderNumberPrefix + ts + strings.ToUpper(hex.EncodeToString(buf)), nil
}
