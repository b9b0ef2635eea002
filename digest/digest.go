package digest

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Digest is the fixed-size output of a hash function. Two digests are equal
// iff their bytes are equal.
type Digest []byte

// Equal returns true if d == other, otherwise, false.
func (d Digest) Equal(other Digest) bool {
	return bytes.Equal(d, other)
}

// Size returns the byte size of the digest.
func (d Digest) Size() int {
	return len(d)
}

// Bytes returns the raw digest bytes.
func (d Digest) Bytes() []byte {
	return d
}

// Clone returns an independent copy of the digest.
func (d Digest) Clone() Digest {
	if d == nil {
		return nil
	}
	return append(Digest(nil), d...)
}

// String returns the lowercase hexadecimal encoding of the digest. The
// output of d.String() is not equivalent to string(d).
func (d Digest) String() string {
	return hex.EncodeToString(d)
}

// FromHex parses a lowercase or uppercase hex string into a Digest. It is
// the inverse of Digest.String().
func FromHex(s string) (Digest, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid digest hex %q: %w", s, err)
	}
	return raw, nil
}

// Concat returns left || right in a freshly allocated buffer. This is the
// exact input over which a parent digest is computed.
func Concat(left, right Digest) []byte {
	buf := make([]byte, 0, len(left)+len(right))
	buf = append(buf, left...)
	buf = append(buf, right...)
	return buf
}
