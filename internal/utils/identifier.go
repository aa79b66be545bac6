package utils

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewEntityID returns a unique, monotonic, timestamp-derived entity id.
// Ids assigned within the same millisecond are bumped forward so two rapid
// creations never collide; an id is never reused within a process lifetime.
func NewEntityID() string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}
