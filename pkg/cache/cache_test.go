package cache

import (
	"sync"
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New[string, int](0)

	_, ok := c.Get("missing")
	if ok {
		t.Error("expected ok=false for missing key")
	}

	c.Set("key1", 100)
	val, ok := c.Get("key1")
	if !ok || val != 100 {
		t.Errorf("expected (100, true), got (%d, %v)", val, ok)
	}

	c.Set("key1", 200)
	val, _ = c.Get("key1")
	if val != 200 {
		t.Errorf("expected overwrite to 200, got %d", val)
	}
	if c.Size() != 1 {
		t.Errorf("expected size 1 after overwrite, got %d", c.Size())
	}
}

func TestExpiry(t *testing.T) {
	c := New[string, string](time.Minute)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("key", "value")

	if _, ok := c.Get("key"); !ok {
		t.Fatal("expected entry before expiry")
	}

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, ok := c.Get("key"); ok {
		t.Error("expected entry to expire")
	}
	if c.Size() != 0 {
		t.Errorf("expected expired entry to be dropped, size %d", c.Size())
	}
}

func TestNoExpiryWhenZeroTTL(t *testing.T) {
	c := New[string, string](0)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("key", "value")

	c.now = func() time.Time { return base.Add(24 * time.Hour) }
	if _, ok := c.Get("key"); !ok {
		t.Error("expected entry to survive without ttl")
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New[string, int](0)

	c.Delete("missing")

	c.Set("key1", 1)
	c.Set("key2", 2)
	c.Delete("key1")

	if _, ok := c.Get("key1"); ok {
		t.Error("expected key1 to be deleted")
	}
	if _, ok := c.Get("key2"); !ok {
		t.Error("expected key2 to remain")
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("expected size 0 after clear, got %d", c.Size())
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int](time.Minute)
	var wg sync.WaitGroup
	numGoroutines := 50
	numOperations := 200

	for i := range numGoroutines {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := id*numOperations + j
				c.Set(key, key)
			}
		}(i)

		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				c.Get(id * numOperations)
			}
		}(i)
	}
	wg.Wait()

	expectedSize := numGoroutines * numOperations
	if c.Size() != expectedSize {
		t.Errorf("expected size %d after concurrent writes, got %d", expectedSize, c.Size())
	}
}
