package handler

import (
	"context"
	"ticket_master/database"
	"ticket_master/service"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AvailabilityStream pushes the seat availability of one event: the current
// numbers on connect, then every update published for the event.
func AvailabilityStream(c *websocket.Conn) {
	defer c.Close()

	eventId, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.WriteJSON(map[string]string{"error": "invalid event id"})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	availability, err := service.GetAvailability(database.DB.WithContext(ctx), eventId)
	if err != nil {
		_ = c.WriteJSON(map[string]string{"error": err.Error()})
		return
	}
	if err := c.WriteJSON(availability); err != nil {
		return
	}

	sub, err := service.Broker().Subscribe(ctx, eventId)
	if err != nil {
		log.Error().Err(err).Str("eventId", eventId.String()).Msg("availability subscribe failed")
		return
	}
	defer sub.Close()

	// reads only detect the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-sub.Messages():
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}
}
