package internal

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Source string

const (
	SourceRemote   Source = "remote"
	SourceSnapshot Source = "snapshot"
)

// RateStore owns the live RateTable. The table is swapped wholesale, so
// readers always see one complete snapshot.
type RateStore struct {
	provider RatesProvider
	storage  SnapshotStorage
	logger   *zap.Logger
	now      func() time.Time

	table  atomic.Pointer[RateTable]
	flight singleflight.Group
}

func NewRateStore(provider RatesProvider, storage SnapshotStorage, logger *zap.Logger) *RateStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateStore{
		provider: provider,
		storage:  storage,
		logger:   logger.With(zap.String("component", "rate_store")),
		now:      time.Now,
	}
}

// WithClock overrides the time source used for lastUpdated.
func (s *RateStore) WithClock(now func() time.Time) *RateStore {
	s.now = now
	return s
}

// Table returns the current table, or nil before the first successful load.
func (s *RateStore) Table() *RateTable {
	return s.table.Load()
}

// Refresh fetches rates for base from the provider and replaces the table.
// Concurrent calls share one request. A failed snapshot write is logged and
// does not fail the refresh.
func (s *RateStore) Refresh(ctx context.Context, base CurrencyCode) (*RateTable, error) {
	v, err, _ := s.flight.Do(base.String(), func() (any, error) {
		return s.refresh(ctx, base)
	})
	if err != nil {
		return nil, err
	}
	return v.(*RateTable), nil
}

func (s *RateStore) refresh(ctx context.Context, base CurrencyCode) (*RateTable, error) {
	resp, err := s.provider.Latest(ctx, base)
	if err != nil {
		return nil, &FetchError{Base: base, Cause: err}
	}

	tableBase := base
	if resp.Base != "" {
		b, err := NewCurrencyCode(resp.Base)
		if err != nil {
			return nil, &FetchError{Base: base, Cause: fmt.Errorf("invalid base %q: %w", resp.Base, err)}
		}
		tableBase = b
	}

	table, dropped, err := NewRateTable(tableBase, resp.Rates, NewTimestamp(s.now()))
	if err != nil {
		return nil, &FetchError{Base: base, Cause: err}
	}
	if len(dropped) > 0 {
		s.logger.Warn("dropped invalid rates from provider payload",
			zap.Stringer("base", tableBase), zap.Any("codes", dropped))
	}

	s.table.Store(table)
	s.logger.Info("rates refreshed",
		zap.Stringer("base", tableBase),
		zap.Int("count", table.Len()),
		zap.Stringer("last_update", table.LastUpdated()))

	if err := s.SaveSnapshot(ctx, table); err != nil {
		s.logger.Warn("snapshot not saved", zap.Error(err))
	}
	return table, nil
}

// LoadSnapshot replaces the table with the persisted snapshot. On failure the
// current table is left untouched.
func (s *RateStore) LoadSnapshot(ctx context.Context) (*RateTable, error) {
	snap, err := s.storage.Load(ctx)
	if err != nil {
		return nil, s.cacheError(err)
	}
	if snap.Rates == nil {
		return nil, s.cacheError(errors.New("missing rates"))
	}

	table, dropped, err := NewRateTable(snap.Base, *snap.Rates, snap.LastUpdate)
	if err != nil {
		return nil, s.cacheError(err)
	}
	if len(dropped) > 0 {
		s.logger.Warn("dropped invalid rates from snapshot", zap.Any("codes", dropped))
	}

	s.table.Store(table)
	s.logger.Info("rates loaded from snapshot",
		zap.String("path", s.storage.Path()),
		zap.Int("count", table.Len()),
		zap.Stringer("last_update", table.LastUpdated()))
	return table, nil
}

func (s *RateStore) cacheError(err error) error {
	var ce *CacheError
	if errors.As(err, &ce) {
		return err
	}
	return &CacheError{Path: s.storage.Path(), Cause: err}
}

func (s *RateStore) SaveSnapshot(ctx context.Context, table *RateTable) error {
	if table == nil {
		return &PersistError{Path: s.storage.Path(), Cause: ErrEmptyRateTable}
	}
	if err := s.storage.Save(ctx, NewSnapshot(table)); err != nil {
		var pe *PersistError
		if errors.As(err, &pe) {
			return err
		}
		return &PersistError{Path: s.storage.Path(), Cause: err}
	}
	return nil
}

// Acquire refreshes from the provider and falls back to the snapshot when the
// refresh fails. The returned error wraps ErrNoRates when both fail.
func (s *RateStore) Acquire(ctx context.Context, base CurrencyCode) (*RateTable, Source, error) {
	table, fetchErr := s.Refresh(ctx, base)
	if fetchErr == nil {
		return table, SourceRemote, nil
	}
	s.logger.Warn("refresh failed, trying snapshot", zap.Error(fetchErr))

	table, cacheErr := s.LoadSnapshot(ctx)
	if cacheErr == nil {
		return table, SourceSnapshot, nil
	}
	return nil, "", errors.Join(ErrNoRates, fetchErr, cacheErr)
}

func (s *RateStore) HasRate(code string) bool {
	t := s.table.Load()
	return t != nil && t.HasRate(code)
}

func (s *RateStore) RateOf(code string) (float64, bool) {
	t := s.table.Load()
	if t == nil {
		return 0, false
	}
	return t.RateOf(code)
}

// LastUpdated is zero until the first successful load.
func (s *RateStore) LastUpdated() Timestamp {
	t := s.table.Load()
	if t == nil {
		return Timestamp{}
	}
	return t.LastUpdated()
}
