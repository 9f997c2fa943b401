// ABOUTME: Charm KV backend for the remote record service.
// ABOUTME: Completed sessions, drafts, steps and settings under key prefixes.
package charmkv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/kv"

	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/remote"
)

const (
	dbName    = "ironlog"
	charmHost = "charm.2389.dev"

	sessionPrefix = "session:"
	draftPrefix   = "draft:"
	stepsPrefix   = "steps:"
	settingsKey   = "settings"
)

// Client implements remote.Service on top of Charm Cloud KV. Writes go
// to the local replica first and sync to the cloud after each mutation.
type Client struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

var _ remote.Service = (*Client)(nil)

// Open opens the Charm-backed record store.
func Open() (*Client, error) {
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(dbName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	c := &Client{kv: db, autoSync: true}

	// Pull remote data on startup (skip in read-only mode)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return c, nil
}

// Close closes the KV database connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// Sync synchronizes the local replica with Charm Cloud.
func (c *Client) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

func (c *Client) syncIfEnabled() {
	if c.autoSync && !c.kv.IsReadOnly() {
		_ = c.kv.Sync()
	}
}

// SaveSession routes by session state. Completed sessions are stored
// without their start time and evict any lingering draft copy; drafts
// keep the start time so an in-flight workout survives a device switch.
func (c *Client) SaveSession(ctx context.Context, session models.WorkoutSession) error {
	if session.State() == models.StateCompleted {
		data, err := json.Marshal(session.WithoutStartTime())
		if err != nil {
			return err
		}
		if err := c.set(sessionPrefix+session.ID, data); err != nil {
			return err
		}
		return c.delete(draftPrefix + session.ID)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.set(draftPrefix+session.ID, data)
}

// DeleteSession removes a session from both stores.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	if err := c.delete(sessionPrefix + id); err != nil {
		return err
	}
	return c.delete(draftPrefix + id)
}

// SaveSteps upserts the step entry for a date, keeping the entry id
// when one already exists.
func (c *Client) SaveSteps(ctx context.Context, date string, stepCount int) error {
	entry := models.NewStepsEntry(date, stepCount)

	c.mu.RLock()
	existing, err := c.kv.Get([]byte(stepsPrefix + date))
	c.mu.RUnlock()
	if err == nil && len(existing) > 0 {
		var prev models.StepsEntry
		if json.Unmarshal(existing, &prev) == nil && prev.ID != "" {
			entry.ID = prev.ID
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.set(stepsPrefix+date, data)
}

// SaveSettings stores the settings singleton.
func (c *Client) SaveSettings(ctx context.Context, settings models.AppSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return c.set(settingsKey, data)
}

// LoadAll returns all completed sessions, step entries and settings.
func (c *Client) LoadAll(ctx context.Context) (remote.Snapshot, error) {
	var snap remote.Snapshot

	sessionData, err := c.listByPrefix(sessionPrefix)
	if err != nil {
		return snap, fmt.Errorf("load sessions: %w", err)
	}
	for _, data := range sessionData {
		var s models.WorkoutSession
		if err := json.Unmarshal(data, &s); err != nil {
			return snap, fmt.Errorf("decode session: %w", err)
		}
		s.Completed = true
		snap.Sessions = append(snap.Sessions, s)
	}

	stepsData, err := c.listByPrefix(stepsPrefix)
	if err != nil {
		return snap, fmt.Errorf("load steps: %w", err)
	}
	for _, data := range stepsData {
		var e models.StepsEntry
		if err := json.Unmarshal(data, &e); err != nil {
			return snap, fmt.Errorf("decode steps entry: %w", err)
		}
		snap.Steps = append(snap.Steps, e)
	}

	c.mu.RLock()
	settingsData, err := c.kv.Get([]byte(settingsKey))
	c.mu.RUnlock()
	if err == nil && len(settingsData) > 0 {
		var settings models.AppSettings
		if err := json.Unmarshal(settingsData, &settings); err != nil {
			return snap, fmt.Errorf("decode settings: %w", err)
		}
		snap.Settings = &settings
	}

	return snap, nil
}

// LoadAllDrafts returns every draft session.
func (c *Client) LoadAllDrafts(ctx context.Context) ([]models.WorkoutSession, error) {
	draftData, err := c.listByPrefix(draftPrefix)
	if err != nil {
		return nil, fmt.Errorf("load drafts: %w", err)
	}

	var drafts []models.WorkoutSession
	for _, data := range draftData {
		var s models.WorkoutSession
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode draft: %w", err)
		}
		s.Completed = false
		drafts = append(drafts, s)
	}
	return drafts, nil
}

// set stores a value with the given key.
func (c *Client) set(key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	if err := c.kv.Set([]byte(key), data); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

// delete removes a key. Missing keys are not an error.
func (c *Client) delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	if err := c.kv.Delete([]byte(key)); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

// listByPrefix returns all values with keys matching the given prefix.
func (c *Client) listByPrefix(prefix string) ([][]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var results [][]byte
	prefixBytes := []byte(prefix)

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		if bytes.HasPrefix(key, prefixBytes) {
			val, err := c.kv.Get(key)
			if err != nil {
				return nil, err
			}
			results = append(results, val)
		}
	}

	return results, nil
}
