// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

// Package clicks persists per-host interaction counters in BadgerDB.
//
// Events are named "{action}_{hostID}" where action is visit (an outbound
// redirect) or details (a detail page view). Each event has one uint64
// counter stored big-endian under the key "click:{event}".
package clicks

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/hostduel/internal/config"
	"github.com/tomtom215/hostduel/internal/metrics"
)

const keyPrefix = "click:"

// Actions.
const (
	ActionVisit   = "visit"
	ActionDetails = "details"
)

// maxConflictRetries bounds Increment retries on concurrent writes.
const maxConflictRetries = 5

var (
	// ErrInvalidEvent is returned for names that are not action_hostID.
	ErrInvalidEvent = errors.New("invalid click event")

	// ErrCorruptCounter is returned when a stored value is not 8 bytes.
	ErrCorruptCounter = errors.New("corrupt click counter")
)

// Count is the stored total for one event.
type Count struct {
	Event  string `json:"event"`
	Action string `json:"action"`
	HostID string `json:"hostId"`
	Count  uint64 `json:"count"`
}

// VisitEvent names an outbound redirect to hostID.
func VisitEvent(hostID string) string { return ActionVisit + "_" + hostID }

// DetailsEvent names a detail view of hostID.
func DetailsEvent(hostID string) string { return ActionDetails + "_" + hostID }

// ParseEvent splits an event into its action and host id.
func ParseEvent(event string) (action, hostID string, err error) {
	action, hostID, ok := strings.Cut(event, "_")
	if !ok || hostID == "" || strings.ContainsAny(hostID, "/\\ ") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidEvent, event)
	}
	switch action {
	case ActionVisit, ActionDetails:
		return action, hostID, nil
	default:
		return "", "", fmt.Errorf("%w: unknown action %q", ErrInvalidEvent, action)
	}
}

// Store is a BadgerDB-backed counter table.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
}

// Open opens the store described by cfg. An empty path or InMemory opens
// an in-memory database whose counters vanish on Close.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Open(cfg config.ClicksConfig, logger zerolog.Logger) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory || cfg.Path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open click store: %w", err)
	}
	return NewStore(db, logger), nil
}

// NewStore wraps an already open database.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewStore(db *badger.DB, logger zerolog.Logger) *Store {
	return &Store{db: db, logger: logger.With().Str("component", "clicks").Logger()}
}

// Increment adds one to event's counter and returns the new total. The
// action counter in metrics is incremented as well.
func (s *Store) Increment(ctx context.Context, event string) (uint64, error) {
	action, _, err := ParseEvent(event)
	if err != nil {
		return 0, err
	}

	key := []byte(keyPrefix + event)
	var total uint64
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		err = s.db.Update(func(txn *badger.Txn) error {
			current, err := readCounter(txn, key)
			if err != nil {
				return err
			}
			total = current + 1
			buf := make([]byte, 8)
			binary.BigEndian.PutUint64(buf, total)
			return txn.Set(key, buf)
		})
		if errors.Is(err, badger.ErrConflict) && attempt < maxConflictRetries {
			continue
		}
		break
	}
	if err != nil {
		return 0, fmt.Errorf("increment %s: %w", event, err)
	}

	metrics.RecordClick(action)
	return total, nil
}

func readCounter(txn *badger.Txn, key []byte) (uint64, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var n uint64
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return ErrCorruptCounter
		}
		n = binary.BigEndian.Uint64(val)
		return nil
	})
	return n, err
}

// Get returns the counter for one event, 0 when it was never recorded.
func (s *Store) Get(ctx context.Context, event string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var n uint64
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		n, err = readCounter(txn, []byte(keyPrefix+event))
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", event, err)
	}
	return n, nil
}

// Counts lists every counter whose event starts with prefix, in key order.
// An empty prefix lists all counters.
func (s *Store) Counts(ctx context.Context, prefix string) ([]Count, error) {
	counts := []Count{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(keyPrefix + prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			event := strings.TrimPrefix(string(item.Key()), keyPrefix)
			action, hostID, err := ParseEvent(event)
			if err != nil {
				s.logger.Warn().Str("event", event).Msg("Skipping unrecognized click key")
				continue
			}

			var n uint64
			if err := item.Value(func(val []byte) error {
				if len(val) != 8 {
					return ErrCorruptCounter
				}
				n = binary.BigEndian.Uint64(val)
				return nil
			}); err != nil {
				return fmt.Errorf("%s: %w", event, err)
			}
			counts = append(counts, Count{Event: event, Action: action, HostID: hostID, Count: n})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list clicks: %w", err)
	}
	return counts, nil
}

// Track increments event and logs failures instead of returning them, so
// callers on the request path never fail because of tracking.
func (s *Store) Track(ctx context.Context, event string) {
	if _, err := s.Increment(ctx, event); err != nil {
		metrics.ClickTrackingErrors.Inc()
		s.logger.Warn().Err(err).Str("event", event).Msg("Click tracking failed")
	}
}

// RunGC rewrites value log files until badger finds nothing worth
// reclaiming. It returns the number of files rewritten. In-memory stores
// have no value log and report 0.
func (s *Store) RunGC(ctx context.Context, discardRatio float64) (int, error) {
	rewritten := 0
	for {
		if err := ctx.Err(); err != nil {
			return rewritten, err
		}
		err := s.db.RunValueLogGC(discardRatio)
		switch {
		case err == nil:
			rewritten++
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return rewritten, nil
		default:
			return rewritten, fmt.Errorf("value log gc: %w", err)
		}
	}
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}
