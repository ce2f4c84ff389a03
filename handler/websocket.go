package handler

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/eagledigitalhouse/eventpro-sub001/utils"

	"github.com/gofiber/contrib/websocket"
)

var (
	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

// CheckinFeedConnection painel da portaria: cada evento é uma sala; os
// check-ins chegam pelo canal Redis publicado em publishCheckIn.
func CheckinFeedConnection(c *websocket.Conn) {
	eventIdStr := c.Params("id")
	id64, _ := strconv.ParseUint(eventIdStr, 10, 64)
	eventId := uint(id64)

	defer func() {
		mu.Lock()
		if clients[eventId] != nil {
			delete(clients[eventId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[eventId] == nil {
		clients[eventId] = make(map[*websocket.Conn]bool)
	}
	clients[eventId][c] = true
	mu.Unlock()

	pubsub := utils.GetRedisClient().Subscribe(
		context.Background(),
		fmt.Sprintf("checkin:%d", eventId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[eventId] {
			// cliente com erro é removido da sala
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[eventId], conn)
			}
		}
		mu.Unlock()
	}
}
