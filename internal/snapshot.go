package internal

import "context"

// LatestRatesResponse is the provider payload. Only Rates is required.
type LatestRatesResponse struct {
	Base  string `json:"base"`
	Date  string `json:"date"`
	Rates Rates  `json:"rates"`
}

// Snapshot is the persisted form of a RateTable.
type Snapshot struct {
	Base       CurrencyCode `json:"base,omitempty"`
	Rates      *Rates       `json:"rates"`
	LastUpdate Timestamp    `json:"last_update"`
}

func NewSnapshot(t *RateTable) Snapshot {
	rates := t.Rates()
	return Snapshot{
		Base:       t.Base(),
		Rates:      &rates,
		LastUpdate: t.LastUpdated(),
	}
}

type RatesProvider interface {
	Latest(ctx context.Context, base CurrencyCode) (*LatestRatesResponse, error)
}

type SnapshotStorage interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Path() string
}
