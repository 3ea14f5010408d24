package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/scratchrank/internal/claims"
	"github.com/pfrederiksen/scratchrank/internal/config"
	"github.com/pfrederiksen/scratchrank/internal/fetch"
	"github.com/pfrederiksen/scratchrank/internal/game"
	"github.com/pfrederiksen/scratchrank/internal/listing"
	"github.com/pfrederiksen/scratchrank/internal/logger"
	"github.com/pfrederiksen/scratchrank/internal/price"
	"github.com/pfrederiksen/scratchrank/internal/rank"
)

// Analyzer coordinates one end-to-end run
type Analyzer struct {
	cfg      *config.Config
	client   *fetch.Client
	enricher *price.Enricher
	now      func() time.Time
}

// New creates an Analyzer from the run configuration.
func New(cfg *config.Config) *Analyzer {
	client := fetch.New(cfg.Timeout, cfg.RetryWait())
	return &Analyzer{
		cfg:      cfg,
		client:   client,
		enricher: price.NewEnricher(client, cfg.Delay),
		now:      time.Now,
	}
}

// Run executes the pipeline and returns the ranked entries. The only
// fatal failures are an unreachable prizes listing and, for the caller
// to decide, an empty result; everything else degrades to skipping.
func (a *Analyzer) Run(ctx context.Context) ([]rank.Entry, error) {
	claimsSet := a.claimsSet(ctx)

	logger.Info("fetching prizes remaining listing", logger.Fields{"url": a.cfg.PrizesURL()})
	started := time.Now()
	body, err := a.client.Get(ctx, a.cfg.PrizesURL())
	if err != nil {
		return nil, fmt.Errorf("fetching prizes listing: %w", err)
	}
	logger.Time("fetch.listing", time.Since(started))

	games, err := listing.Parse(strings.NewReader(body), a.cfg.BaseURL, claimsSet)
	if err != nil {
		return nil, fmt.Errorf("parsing prizes listing: %w", err)
	}
	logger.Add("games.parsed", int64(len(games)))
	logger.Info("parsed listing", logger.Fields{
		"games":     len(games),
		"in_claims": len(claimsSet),
	})

	priced := a.enrich(ctx, games)
	if len(priced) < len(games) {
		logger.Add("games.dropped", int64(len(games)-len(priced)))
	}

	return rank.Rank(priced), nil
}

// claimsSet fetches and parses the games-ending page. Failure here is
// soft: the run proceeds with an empty set and excludes nothing.
func (a *Analyzer) claimsSet(ctx context.Context) claims.Set {
	logger.Info("checking for games in claims period", logger.Fields{"url": a.cfg.EndingURL()})

	body, err := a.client.Get(ctx, a.cfg.EndingURL())
	if err != nil {
		logger.Warn("games-ending page unavailable, excluding nothing", logger.Fields{"error": err.Error()})
		return claims.Set{}
	}

	set, err := claims.Parse(strings.NewReader(body), a.now())
	if err != nil {
		logger.Warn("games-ending page unparseable, excluding nothing", logger.Fields{"error": err.Error()})
		return claims.Set{}
	}
	return set
}

// enrich resolves ticket prices one game at a time. Games whose detail
// page cannot be fetched or carries no recognizable price are dropped:
// a zero price means unknown and must never reach the report.
func (a *Analyzer) enrich(ctx context.Context, games []*game.Game) []*game.Game {
	kept := make([]*game.Game, 0, len(games))

	for _, g := range games {
		started := time.Now()
		p, err := a.enricher.Price(ctx, g.DetailURL)
		logger.Time("fetch.detail", time.Since(started))

		if err != nil {
			if ctx.Err() != nil {
				logger.Warn("enrichment cancelled", logger.Fields{"game": g.ID})
				return kept
			}
			logger.Warn("detail page unavailable, dropping game", logger.Fields{
				"game":  g.ID,
				"name":  g.Name,
				"error": err.Error(),
			})
			continue
		}
		if p <= 0 {
			logger.Warn("no ticket price found, dropping game", logger.Fields{
				"game": g.ID,
				"name": g.Name,
			})
			continue
		}

		g.TicketPrice = p
		logger.Debug("enriched game", logger.Fields{
			"game":  g.ID,
			"name":  g.Name,
			"price": p,
			"tiers": len(g.Tiers),
		})
		kept = append(kept, g)
	}

	return kept
}
