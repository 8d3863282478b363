package feed

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

const channelPrefix = "bookings:"

func channelFor(userID string) string {
	return channelPrefix + userID
}

// Publisher fans booking-change signals out through Redis pub/sub so
// every API instance holding a watch connection for the user can
// refresh it. Implements repository.ChangeNotifier.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// BookingsChanged never fails the triggering write; a lost signal only
// delays the next snapshot until the client reconnects.
func (p *Publisher) BookingsChanged(ctx context.Context, userID string) {
	if err := p.rdb.Publish(ctx, channelFor(userID), "changed").Err(); err != nil {
		log.Println("feed: publish failed:", err)
	}
}
