package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"jsgreen/internal/kind"
	"jsgreen/internal/lexer"
)

// Digest is a SHA-256 cache key.
type Digest [32]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// treeKey derives the cache key of a fixture: its content plus everything
// else that changes the built tree or its diagnostics (payload schema, the
// size of the kind table, lexer options).
func treeKey(content []byte, lex lexer.Options) Digest {
	h := sha256.New()
	var hdr [16]byte
	binary.LittleEndian.PutUint16(hdr[0:], diskCacheSchemaVersion)
	binary.LittleEndian.PutUint16(hdr[2:], uint16(kind.Count))
	binary.LittleEndian.PutUint64(hdr[4:], uint64(max(lex.MaxTokenLength, 0)))
	if lex.CheckNFC {
		hdr[12] = 1
	}
	h.Write(hdr[:])
	h.Write(content)
	var d Digest
	h.Sum(d[:0])
	return d
}
