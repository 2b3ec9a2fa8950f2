// Package wire frames cached page payloads with a small validated header.
// The header lets the cache tell its own entries apart from foreign or
// corrupt bytes in a shared key space: anything that fails validation is
// deleted on read and treated as a miss. An encoded empty page is a valid
// payload, distinct from "not cached".
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version  byte = 1
	kindPage byte = 1
)

var (
	ErrCorrupt = errors.New("pagecache: corrupt entry")
	magic4     = [...]byte{'P', 'G', 'C', 'K'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Page: magic(4) | ver(1) | kind(1=page) | vlen(u32 be) | payload(vlen)
func EncodePage(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindPage)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

func DecodePage(b []byte) (payload []byte, err error) {
	const hdr = 4 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindPage {
		return nil, ErrCorrupt
	}

	off := 6
	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // exact-length check; trailing bytes are corruption
		return nil, ErrCorrupt
	}
	return b[off : off+vlen], nil
}
