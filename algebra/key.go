package algebra

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

const fingerprintLabel = "qacode/group-algebra/v1"

// Key is the structural identity of a group algebra: two algebras with the same
// characteristic, extension degree and invariant factors (in order) are equal.
type Key struct {
	P     uint64
	T     uint64
	Param string
}

func keyOf(p, t uint64, param []uint64) Key {
	parts := make([]string, len(param))
	for i, n := range param {
		parts[i] = strconv.FormatUint(n, 10)
	}
	return Key{P: p, T: t, Param: strings.Join(parts, ",")}
}

// Fingerprint returns a short hex digest of k, stable across runs and platforms.
func (k Key) Fingerprint() string {
	return hex.EncodeToString(k.digest(16))
}

func (k Key) digest(n int) []byte {
	h := sha3.NewShake256()
	var buf [8]byte
	_, _ = h.Write([]byte(fingerprintLabel))
	binary.BigEndian.PutUint64(buf[:], k.P)
	_, _ = h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], k.T)
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(k.Param))
	out := make([]byte, n)
	_, _ = h.Read(out)
	return out
}
