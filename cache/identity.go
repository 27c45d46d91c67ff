// Package cache keeps one live instance per persisted row.
//
// An Identity is bound to one adapter and keys records by the adapter's
// caching key, so two loads of the same row resolve to the same instance.
// It is safe for concurrent use.
package cache

import (
	"errors"
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/tinywasm/adapter"
)

// ErrNoIdentity is returned for records that do not identify a row yet,
// such as autoincrement records that were never inserted.
var ErrNoIdentity = errors.New("record has no identity")

// Identity maps caching keys to live record instances of one table.
type Identity[T adapter.Record] struct {
	adapter *adapter.Adapter[T]
	records *xsync.MapOf[int64, T]
}

// New returns an empty identity cache for the records a adapts.
func New[T adapter.Record](a *adapter.Adapter[T]) *Identity[T] {
	return &Identity[T]{
		adapter: a,
		records: xsync.NewMapOf[int64, T](),
	}
}

// Table returns the table the cache belongs to.
func (c *Identity[T]) Table() string { return c.adapter.TableName() }

func (c *Identity[T]) key(r T) (int64, error) {
	if !c.adapter.HasValidKey(r) {
		return 0, fmt.Errorf("%s: %w", c.adapter.TableName(), ErrNoIdentity)
	}
	return c.adapter.CachingKey(r)
}

// Put stores r as the live instance of its row, replacing any previous one.
func (c *Identity[T]) Put(r T) error {
	k, err := c.key(r)
	if err != nil {
		return err
	}
	c.records.Store(k, r)
	return nil
}

// Get returns the live instance stored under key.
func (c *Identity[T]) Get(key int64) (T, bool) {
	return c.records.Load(key)
}

// Lookup returns the live instance of the row r represents.
func (c *Identity[T]) Lookup(r T) (T, bool, error) {
	var zero T
	k, err := c.key(r)
	if err != nil {
		return zero, false, err
	}
	v, ok := c.records.Load(k)
	return v, ok, nil
}

// Dedupe returns the live instance of r's row. When none is cached yet, r
// becomes the live instance.
func (c *Identity[T]) Dedupe(r T) (T, error) {
	k, err := c.key(r)
	if err != nil {
		var zero T
		return zero, err
	}
	v, _ := c.records.LoadOrStore(k, r)
	return v, nil
}

// Remove drops r's row from the cache. Removing an uncached row is a no-op.
func (c *Identity[T]) Remove(r T) error {
	k, err := c.key(r)
	if err != nil {
		return err
	}
	c.records.Delete(k)
	return nil
}

// Len returns the number of cached rows.
func (c *Identity[T]) Len() int { return c.records.Size() }

// Clear drops every cached row.
func (c *Identity[T]) Clear() { c.records.Clear() }
