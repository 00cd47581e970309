// Package store holds the two small persistence layers behind the session
// core: a diskv-backed flag store for session booleans and a sqlite-backed
// history repository for completed activities.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// FirstRunCompleted is written exactly once, when the customization flow
// finishes. It never reverts to false.
const FirstRunCompleted = "first_run_completed"

// FlagStore persists small named values (JSON-encoded) between sessions.
type FlagStore struct {
	d *diskv.Diskv
}

// OpenFlags creates a FlagStore rooted at dir.
func OpenFlags(dir string) *FlagStore {
	return &FlagStore{d: diskv.New(diskv.Options{
		BasePath:     dir,
		CacheSizeMax: 64 * 1024,
	})}
}

// Bool reads a boolean flag. Missing keys read as false.
func (s *FlagStore) Bool(key string) (bool, error) {
	if !s.d.Has(key) {
		return false, nil
	}
	raw, err := s.d.Read(key)
	if err != nil {
		return false, fmt.Errorf("read flag %s: %w", key, err)
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, fmt.Errorf("decode flag %s: %w", key, err)
	}
	return v, nil
}

// SetBool writes a boolean flag.
func (s *FlagStore) SetBool(key string, v bool) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.d.Write(key, raw); err != nil {
		return fmt.Errorf("write flag %s: %w", key, err)
	}
	return nil
}

// Int reads an integer flag. Missing keys read as zero.
func (s *FlagStore) Int(key string) (int, error) {
	if !s.d.Has(key) {
		return 0, nil
	}
	raw, err := s.d.Read(key)
	if err != nil {
		return 0, fmt.Errorf("read flag %s: %w", key, err)
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("decode flag %s: %w", key, err)
	}
	return v, nil
}

// SetInt writes an integer flag.
func (s *FlagStore) SetInt(key string, v int) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.d.Write(key, raw); err != nil {
		return fmt.Errorf("write flag %s: %w", key, err)
	}
	return nil
}
