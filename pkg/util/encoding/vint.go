// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package encoding

import "github.com/cockroachdb/errors"

// The zero-compressed variable length integer format implemented here is the
// one understood by the remote scan executor. Values in [-112, 127] occupy a
// single byte. Larger magnitudes are written as a marker byte, which encodes
// both the sign and the number of payload bytes, followed by the big-endian
// payload (one's complemented for negative values).
//
// Note that this is not the same format as EncodeUvarintAscending or the
// protobuf varint: it is neither order preserving nor LEB128.
const (
	vintSingleByteMin = -112
	vintSingleByteMax = 127
	vintPositiveBase  = -112
	vintNegativeBase  = -120
)

// ErrTruncated is returned (wrapped) when a buffer ends before a complete
// value could be decoded.
var ErrTruncated = errors.New("insufficient bytes to decode value")

// EncodeVInt appends the zero-compressed encoding of v to b and returns the
// result.
func EncodeVInt(b []byte, v int64) []byte {
	if v >= vintSingleByteMin && v <= vintSingleByteMax {
		return append(b, byte(v))
	}
	marker := vintPositiveBase
	if v < 0 {
		v = ^v
		marker = vintNegativeBase
	}
	for tmp := v; tmp != 0; tmp >>= 8 {
		marker--
	}
	b = append(b, byte(int8(marker)))
	n := vintPayloadLen(int8(marker))
	for i := n; i > 0; i-- {
		b = append(b, byte(v>>(uint(i-1)*8)))
	}
	return b
}

// VIntSize returns the number of bytes EncodeVInt uses for v.
func VIntSize(v int64) int {
	if v >= vintSingleByteMin && v <= vintSingleByteMax {
		return 1
	}
	if v < 0 {
		v = ^v
	}
	n := 1
	for tmp := v; tmp != 0; tmp >>= 8 {
		n++
	}
	return n
}

// DecodeVInt decodes a value encoded with EncodeVInt and returns the remaining
// bytes.
func DecodeVInt(b []byte) (remaining []byte, v int64, err error) {
	if len(b) == 0 {
		return nil, 0, errors.Wrap(ErrTruncated, "vint marker")
	}
	first := int8(b[0])
	if first >= vintSingleByteMin {
		return b[1:], int64(first), nil
	}
	n := vintPayloadLen(first)
	if len(b) < n+1 {
		return nil, 0, errors.Wrapf(ErrTruncated, "vint payload of %d bytes", n)
	}
	for _, c := range b[1 : n+1] {
		v = v<<8 | int64(c)
	}
	if first < vintNegativeBase {
		v = ^v
	}
	return b[n+1:], v, nil
}

// vintPayloadLen returns the number of payload bytes following a multi-byte
// marker.
func vintPayloadLen(marker int8) int {
	if marker < vintNegativeBase {
		return -(int(marker) - vintNegativeBase)
	}
	return -(int(marker) - vintPositiveBase)
}

// EncodeVIntBytes appends data to b, prefixed with its length encoded as a
// vint.
func EncodeVIntBytes(b []byte, data []byte) []byte {
	b = EncodeVInt(b, int64(len(data)))
	return append(b, data...)
}

// DecodeVIntBytes decodes a byte string written by EncodeVIntBytes. The
// returned slice aliases b.
func DecodeVIntBytes(b []byte) (remaining []byte, data []byte, err error) {
	b, n, err := DecodeVInt(b)
	if err != nil {
		return nil, nil, err
	}
	if n < 0 {
		return nil, nil, errors.Newf("invalid byte string length %d", n)
	}
	if int64(len(b)) < n {
		return nil, nil, errors.Wrapf(ErrTruncated, "byte string of length %d", n)
	}
	return b[n:], b[:n], nil
}

// EncodeVIntBytesList appends a vint element count followed by every element
// as a length-prefixed byte string.
func EncodeVIntBytesList(b []byte, list [][]byte) []byte {
	b = EncodeVInt(b, int64(len(list)))
	for _, data := range list {
		b = EncodeVIntBytes(b, data)
	}
	return b
}

// DecodeVIntBytesList decodes a list written by EncodeVIntBytesList. The
// returned elements are copies and do not alias b.
func DecodeVIntBytesList(b []byte) (remaining []byte, list [][]byte, err error) {
	b, n, err := DecodeVInt(b)
	if err != nil {
		return nil, nil, err
	}
	if n < 0 || n > int64(len(b)) {
		return nil, nil, errors.Newf("invalid list length %d", n)
	}
	list = make([][]byte, 0, n)
	for i := int64(0); i < n; i++ {
		var data []byte
		if b, data, err = DecodeVIntBytes(b); err != nil {
			return nil, nil, errors.Wrapf(err, "list element %d", i)
		}
		elem := make([]byte, len(data))
		copy(elem, data)
		list = append(list, elem)
	}
	return b, list, nil
}
