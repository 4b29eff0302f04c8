// Package namegen generates collision-resistant fragments for temporary file names.
package namegen

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/tmpkeep/tmpkeep/internal/clock"
)

// number of random bytes in the random fragment.
const randomLen = 6

// Fragments returns a base-36 millisecond timestamp fragment and a
// cryptographically random hex fragment. Two calls within the same
// millisecond still produce distinct fragments.
func Fragments() (timestamp, random string) {
	var b [randomLen]byte

	rand.Read(b[:]) //nolint:errcheck

	return strconv.FormatInt(clock.Now().UnixMilli(), 36), hex.EncodeToString(b[:])
}

// Expand substitutes recognized placeholders in a file name pattern:
// {timestamp} (base-36 milliseconds), {time} (decimal milliseconds),
// {random} (hex fragment) and {uuid}. Unrecognized placeholders are
// left verbatim.
func Expand(pattern string) string {
	ts, random := Fragments()

	return strings.NewReplacer(
		"{timestamp}", ts,
		"{time}", strconv.FormatInt(clock.Now().UnixMilli(), 10),
		"{random}", random,
		"{uuid}", uuid.NewString(),
	).Replace(pattern)
}
