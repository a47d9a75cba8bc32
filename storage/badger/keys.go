package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/askdocs/core"
)

// Key prefixes for different data types
const (
	documentPrefix   = "docrec"
	documentSeqPfx   = "docrecseq"
	documentOrderPfx = "docrecord"
	documentHashPfx  = "dochash"
	qaResultPrefix   = "qarec"
	qaResultDatePfx  = "qarecd"
	qaResultSeqPfx   = "qarecseq"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeDocumentOrderKey generates a composite key for the insertion-order
// index. Format: prefix:seq, with seq in BigEndian so lexicographic
// iteration follows insertion order.
func makeDocumentOrderKey(seq uint64) []byte {
	prefix := documentOrderPfx + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makeDocumentHashKey generates a key for the content-hash index.
func makeDocumentHashKey(contentID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentHashPfx, contentID))
}

// makeQAResultKey generates a key for a QA result by ID.
func makeQAResultKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", qaResultPrefix, id))
}

// makeQAResultDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id, BigEndian so lexicographic sort works.
func makeQAResultDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := qaResultDatePfx + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialQAResultDateKey generates a partial key for date range scans.
func makePartialQAResultDateKey(timestamp time.Time) []byte {
	prefix := qaResultDatePfx + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}
