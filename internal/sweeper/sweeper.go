package sweeper

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	"art-auction/internal/repository"
	"art-auction/utils"
)

const sweepTimeout = 10 * time.Second

// Sweeper periodically closes active auctions whose end time has passed.
// Bid placement already rejects expired auctions lazily; the sweeper keeps
// listings and the active-auction endpoint from advertising a dead auction.
type Sweeper struct {
	store repository.AuctionStore
	cron  *cron.Cron
}

// New schedules a sweep on the given cron spec (e.g. "@every 1m")
func New(store repository.AuctionStore, schedule string) (*Sweeper, error) {
	s := &Sweeper{
		store: store,
		cron:  cron.New(),
	}
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, errors.Wrapf(err, "invalid sweep schedule %q", schedule)
	}
	return s, nil
}

// Start launches the schedule in its own goroutine
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	closed, err := s.store.CloseExpired(ctx, time.Now().UTC())
	if err != nil {
		utils.Error("sweeper: failed to close expired auctions", map[string]any{"error": err.Error()})
		return
	}
	if closed > 0 {
		utils.Info("sweeper: closed expired auctions", map[string]any{"count": closed})
	}
}
