package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/owiro17/smarttrimz/internal/feed"
	"github.com/owiro17/smarttrimz/internal/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is already vetted by the CORS middleware.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type FeedHandler struct {
	hub      *feed.Hub
	listener *feed.Listener
}

func NewFeedHandler(hub *feed.Hub, listener *feed.Listener) *FeedHandler {
	return &FeedHandler{hub: hub, listener: listener}
}

// Watch upgrades to a websocket and streams bucketed booking snapshots:
// one immediately, then one for every change to the user's bookings.
// Blocks until the client disconnects; the hub owns the connection and
// serializes all writes through its pump.
func (h *FeedHandler) Watch(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("feed: upgrade failed:", err)
		return
	}

	h.hub.Serve(userID, conn, func() {
		h.listener.Push(c.Request.Context(), userID)
	})
}
