package queries

import (
	"encoding/base64"
	"encoding/binary"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.Sentinel("invalid pagination cursor", errs.ErrInvalidInput)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	cursorVersion = byte(1)
	// version + unix micros + uuid
	cursorLen = 1 + 8 + 16
)

var cursorEncoding = base64.RawURLEncoding

// EncodeAfterCursor packs a keyset position into an opaque URL-safe token.
// Microsecond precision matches Postgres timestamptz.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	buf := make([]byte, 0, cursorLen)
	buf = append(buf, cursorVersion)
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.UnixMicro())) // #nosec G115 -- round-tripped by DecodeAfterCursor
	buf = append(buf, id[:]...)
	return cursorEncoding.EncodeToString(buf)
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := cursorEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "decode cursor")
	}
	if len(raw) != cursorLen || raw[0] != cursorVersion {
		return time.Time{}, uuid.Nil, errs.Newf("cursor: unexpected layout (%d bytes)", len(raw))
	}

	micros := int64(binary.BigEndian.Uint64(raw[1:9])) // #nosec G115 -- written from an int64 by EncodeAfterCursor
	id, err := uuid.FromBytes(raw[9:])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor id")
	}
	return time.UnixMicro(micros), id, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Keyset is a decoded cursor position: rows strictly older than it follow.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

func decodeKeyset(cursor *Cursor) (*Keyset, error) {
	if cursor == nil || cursor.After == "" {
		return nil, nil
	}
	createdAt, id, err := DecodeAfterCursor(cursor.After)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	return &Keyset{CreatedAt: createdAt, ID: id}, nil
}

// paginate trims a limit+1 fetch down to limit and builds the next cursor
// from the last row kept.
func paginate[T any](rows []T, limit int, key func(T) (time.Time, uuid.UUID)) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	createdAt, id := key(rows[limit-1])
	return rows[:limit], &Cursor{After: EncodeAfterCursor(createdAt, id)}
}

// ValidateLimit maps a missing or negative limit to the default and caps the rest.
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
