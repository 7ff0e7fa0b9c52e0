// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/meshrf/planner/internal/logging"
	"github.com/meshrf/planner/internal/metrics"
)

// byteCache is the shared, cross-process cache of encoded tile blobs
// (spec.md §4.1 "Shared byte cache"). It survives across worker
// processes; entries are keyed by TileKey.String(), e.g.
// "tile:12:654:1423" (spec.md §6 "Persisted state layout").
type byteCache struct {
	db  *badger.DB
	ttl time.Duration
}

func newByteCache(path string, ttl time.Duration) (*byteCache, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // zerolog is the application's logger, not Badger's own

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open tile byte cache at %s: %w", path, err)
	}

	return &byteCache{db: db, ttl: ttl}, nil
}

func (c *byteCache) get(key TileKey) ([]byte, bool) {
	var data []byte

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key.String()))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte(nil), val...)
			return nil
		})
	})

	if err != nil {
		metrics.RecordCacheMiss("byte")
		return nil, false
	}
	metrics.RecordCacheHit("byte")
	return data, true
}

func (c *byteCache) put(key TileKey, data []byte) {
	err := c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key.String()), data)
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		logging.Warn().Err(err).Str("key", key.String()).Msg("failed to persist tile to byte cache")
	}
}

func (c *byteCache) Close() error {
	return c.db.Close()
}
