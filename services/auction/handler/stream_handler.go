package handler

import (
	"errors"
	"net/http"

	"auction-engine/internal/livestream"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// StreamHandler upgrades watchers onto the live bid stream.
type StreamHandler struct {
	hub      *livestream.Hub
	upgrader websocket.Upgrader
}

func NewStreamHandler(hub *livestream.Hub) *StreamHandler {
	return &StreamHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// WatchAuctionHandler handles GET /ws/auctions/:auction_id?user_id=...
// The connection stays open until the client disconnects; events arrive as
// JSON frames in bid-acceptance order.
func (h *StreamHandler) WatchAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	userID := c.Query("user_id")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest,
			errMissingUserID, "user_id query parameter is required")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("WatchAuctionHandler: websocket upgrade failed", map[string]any{
			"auction_id": auctionID, "user_id": userID, "error": err.Error(),
		})
		return
	}

	sub := h.hub.Subscribe(auctionID, userID)
	utils.Info("WatchAuctionHandler: watcher attached", map[string]any{
		"auction_id": auctionID, "user_id": userID,
	})

	client := livestream.NewClient(conn, h.hub, sub)
	client.Run()
}

var errMissingUserID = errors.New("user_id is required")
