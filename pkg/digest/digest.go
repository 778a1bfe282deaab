package digest

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"
	"unsafe"

	"github.com/dchest/siphash"
	"github.com/pkg/errors"

	"github.com/snwfog/linked.go/pkg/util"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

var ErrUnsupported = errors.New("unsupported value type")

// Sum hashes a single value. Integers hash by numeric value regardless of
// their width, so int8(3) and uint64(3) agree.
func Sum(v interface{}) (uint64, error) {
	if util.IsNil(v) {
		return 0, errors.New("cannot hash a nil value")
	}

	switch x := v.(type) {
	case string:
		return getStringHash(x), nil
	case []byte:
		return siphash.Hash(sipHashKey1, sipHashKey2, x), nil
	case bool:
		if x {
			return getUint64Hash(1), nil
		}
		return getUint64Hash(0), nil
	case int:
		return getUint64Hash(uint64(x)), nil
	case int8:
		return getUint64Hash(uint64(x)), nil
	case int16:
		return getUint64Hash(uint64(x)), nil
	case int32:
		return getUint64Hash(uint64(x)), nil
	case int64:
		return getUint64Hash(uint64(x)), nil
	case uint:
		return getUint64Hash(uint64(x)), nil
	case uint8:
		return getUint64Hash(uint64(x)), nil
	case uint16:
		return getUint64Hash(uint64(x)), nil
	case uint32:
		return getUint64Hash(uint64(x)), nil
	case uint64:
		return getUint64Hash(x), nil
	case uintptr:
		return getUint64Hash(uint64(x)), nil
	case float32:
		return getUint64Hash(math.Float64bits(float64(x))), nil
	case float64:
		return getUint64Hash(math.Float64bits(x)), nil
	case fmt.Stringer:
		return getStringHash(x.String()), nil
	}

	return 0, errors.Wrapf(ErrUnsupported, "%T", v)
}

// zero copy from string to []byte
func getStringHash(s string) uint64 {
	buf := unsafe.Slice(unsafe.StringData(s), len(s))
	return siphash.Hash(sipHashKey1, sipHashKey2, buf)
}

func getUint64Hash(num uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], num)
	return siphash.Hash(sipHashKey1, sipHashKey2, buf[:])
}

// region Digest
// Digest accumulates value hashes in order; permuting the values changes the
// sum.
type Digest struct {
	h   hash.Hash64
	buf [8]byte
	n   int
}

func New() *Digest {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], sipHashKey1)
	binary.LittleEndian.PutUint64(key[8:], sipHashKey2)
	return &Digest{h: siphash.New(key[:])}
}

func (d *Digest) Add(v interface{}) error {
	sum, err := Sum(v)
	if err != nil {
		return err
	}

	binary.LittleEndian.PutUint64(d.buf[:], sum)
	_, _ = d.h.Write(d.buf[:])
	d.n++
	return nil
}

// Len is the number of values added.
func (d *Digest) Len() int {
	return d.n
}

func (d *Digest) Sum64() uint64 {
	return d.h.Sum64()
}

// endregion
