package feed

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/owiro17/smarttrimz/internal/domain/booking"
)

const resubscribeDelay = 2 * time.Second

// Snapshot is what a watch client receives on every change: the full
// bucketed view of their bookings.
type Snapshot struct {
	Upcoming []domain.View `json:"upcoming"`
	Past     []domain.View `json:"past"`
}

// Listener bridges Redis booking-change signals to the websocket hub:
// on each signal it reloads that user's bookings, recomputes the
// buckets and pushes the fresh snapshot. When the subscription breaks
// it logs, leaves clients on their last good snapshot, and
// re-subscribes after a short delay.
type Listener struct {
	rdb  *redis.Client
	hub  *Hub
	repo domain.Repository
	loc  *time.Location
}

func NewListener(
	rdb *redis.Client,
	hub *Hub,
	repo domain.Repository,
	loc *time.Location,
) *Listener {
	return &Listener{
		rdb:  rdb,
		hub:  hub,
		repo: repo,
		loc:  loc,
	}
}

func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Println("feed: subscription lost:", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(resubscribeDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	sub := l.rdb.PSubscribe(ctx, channelPrefix+"*")
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return errors.New("pubsub channel closed")
			}
			userID := strings.TrimPrefix(msg.Channel, channelPrefix)
			l.Push(ctx, userID)
		}
	}
}

// Push recomputes and delivers the snapshot for one user. Safe to call
// directly for the initial snapshot on connect.
func (l *Listener) Push(ctx context.Context, userID string) {
	if !l.hub.IsOnline(userID) {
		return
	}

	rows, err := l.repo.ListBookingsByUser(ctx, userID)
	if err != nil {
		// Keep serving the last good snapshot.
		log.Println("feed: reload failed for user", userID+":", err)
		return
	}

	upcoming, past := domain.Buckets(rows, time.Now().In(l.loc))
	l.hub.SendToUser(userID, Snapshot{Upcoming: upcoming, Past: past})
}
