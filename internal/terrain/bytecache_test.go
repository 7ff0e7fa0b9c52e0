// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"testing"
	"time"
)

func TestByteCache_GetPutRoundTrip(t *testing.T) {
	c, err := newByteCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("newByteCache() error = %v", err)
	}
	defer c.Close()

	key := TileKey{Z: 12, X: 1, Y: 1}
	if _, ok := c.get(key); ok {
		t.Fatal("expected miss on empty cache")
	}

	data := []byte("fake-tile-bytes")
	c.put(key, data)

	got, ok := c.get(key)
	if !ok {
		t.Fatal("expected hit after put")
	}
	if string(got) != string(data) {
		t.Errorf("got %q, want %q", got, data)
	}
}

func TestByteCache_WithTTL(t *testing.T) {
	c, err := newByteCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("newByteCache() error = %v", err)
	}
	defer c.Close()

	key := TileKey{Z: 1, X: 1, Y: 1}
	c.put(key, []byte("data"))

	if _, ok := c.get(key); !ok {
		t.Fatal("expected entry to still be valid within TTL")
	}
}
