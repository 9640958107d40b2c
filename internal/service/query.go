package service

import (
	"time"

	"fitcalc/internal/config"
	"fitcalc/internal/store"
)

// QueryService turns config and stored data into display-ready results for the TUI
type QueryService struct {
	store *store.Store
	cfg   config.Config
	now   func() time.Time
}

// NewQueryService creates a new query service
func NewQueryService(store *store.Store, cfg *config.Config) *QueryService {
	c := config.DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	return &QueryService{store: store, cfg: c, now: time.Now}
}

// Config returns the configuration the service was built with
func (q *QueryService) Config() config.Config {
	return q.cfg
}
