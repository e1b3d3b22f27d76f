// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the key lifecycle of one ledger session.
//
// A Session is in exactly one of three states:
//
//	NoEncryption — encryption is disabled; operations run with a nil key.
//	Locked       — encryption is enabled but no key is in memory.
//	Unlocked     — a key is in memory.
//
// Unlocking is optimistic: any key is accepted, and the first decryption of
// real ciphertext is the actual correctness check. The key is never written
// anywhere; Lock drops it.
package session

import (
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
)

// State is the lifecycle state of a [Session].
type State int

const (
	NoEncryption State = iota
	Locked
	Unlocked
)

func (s State) String() string {
	switch s {
	case NoEncryption:
		return "no_encryption"
	case Locked:
		return "locked"
	case Unlocked:
		return "unlocked"
	}
	return "unknown"
}

// snapshot is swapped as a whole; readers never see a half-updated session.
type snapshot struct {
	state State
	key   *crypto.KeyMaterial
}

// Session is safe for concurrent use. The zero value is not usable; call
// [New].
type Session struct {
	current  atomic.Pointer[snapshot]
	lastUsed atomic.Int64
	now      func() time.Time
}

// New returns a session in NoEncryption state when encryptionEnabled is
// false and in Locked state otherwise.
func New(encryptionEnabled bool) *Session {
	s := &Session{now: time.Now}
	if encryptionEnabled {
		s.current.Store(&snapshot{state: Locked})
	} else {
		s.current.Store(&snapshot{state: NoEncryption})
	}
	s.touch()
	return s
}

// State returns the current state.
func (s *Session) State() State {
	return s.current.Load().state
}

// Unlock installs key and moves the session to Unlocked. It is also the way
// to turn encryption on for a session that had none.
func (s *Session) Unlock(key *crypto.KeyMaterial) {
	if key == nil {
		s.Lock()
		return
	}
	s.current.Store(&snapshot{state: Unlocked, key: key})
	s.touch()
}

// Lock drops the key. A session without encryption stays in NoEncryption.
func (s *Session) Lock() {
	for {
		old := s.current.Load()
		if old.state == NoEncryption {
			return
		}
		if s.current.CompareAndSwap(old, &snapshot{state: Locked}) {
			return
		}
	}
}

// Disable moves the session to NoEncryption and forgets any key.
func (s *Session) Disable() {
	s.current.Store(&snapshot{state: NoEncryption})
}

// Key returns the key to pass to record operations:
//   - NoEncryption: (nil, nil)
//   - Unlocked:     (key, nil)
//   - Locked:       (nil, crypto.ErrEncryptionKeyRequired)
func (s *Session) Key() (*crypto.KeyMaterial, error) {
	snap := s.current.Load()
	switch snap.state {
	case NoEncryption:
		return nil, nil
	case Unlocked:
		s.touch()
		return snap.key, nil
	default:
		return nil, crypto.ErrEncryptionKeyRequired
	}
}

// LastUsed returns the time of the last unlock or key access.
func (s *Session) LastUsed() time.Time {
	return time.Unix(0, s.lastUsed.Load())
}

func (s *Session) touch() {
	s.lastUsed.Store(s.now().UnixNano())
}
