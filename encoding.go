package bignum

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// WordsFromBytes converts a big-endian byte slice into k little-endian
// words, left-padding with zeros. It fails if the value does not fit in
// k words. Lengths are public, so this conversion is not constant time.
func WordsFromBytes(k int, b []byte) ([]uint64, error) {
	if k < 1 {
		return nil, errors.Errorf("bignum: word count %d out of range", k)
	}
	if len(b) > 8*k {
		return nil, errors.Errorf("bignum: %d-byte value does not fit in %d words", len(b), k)
	}

	buf := make([]byte, 8*k)
	copy(buf[8*k-len(b):], b)
	x := make([]uint64, k)
	for i := 0; i < k; i++ {
		offset := 8 * (k - 1 - i)
		x[i] = binary.BigEndian.Uint64(buf[offset : offset+8])
	}
	return x, nil
}

// WordsToBytes returns x as a fixed-width big-endian byte slice of
// 8*len(x) bytes.
func WordsToBytes(x []uint64) []byte {
	b := make([]byte, 8*len(x))
	for i, w := range x {
		offset := 8 * (len(x) - 1 - i)
		binary.BigEndian.PutUint64(b[offset:offset+8], w)
	}
	return b
}

// ParseHex parses a big-endian hex string, with or without a 0x prefix,
// into k words.
func ParseHex(k int, s string) ([]uint64, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "bignum: invalid hex value")
	}
	return WordsFromBytes(k, raw)
}

// FormatHex returns x as a fixed-width big-endian hex string.
func FormatHex(x []uint64) string {
	return hex.EncodeToString(WordsToBytes(x))
}
