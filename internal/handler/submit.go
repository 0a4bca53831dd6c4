package handler

import (
	"context"
	"log"

	"github.com/fruit-order/api/internal/enum"
	"github.com/fruit-order/api/internal/metrics"
	"github.com/fruit-order/api/internal/middleware"
	"github.com/fruit-order/api/internal/service"
	"github.com/fruit-order/api/internal/session"
	"github.com/fruit-order/api/internal/ws"
	"github.com/google/uuid"
)

// Broadcaster pushes events to the open pages of one session.
// Satisfied by *ws.Hub.
type Broadcaster interface {
	BroadcastToSession(sessionID uuid.UUID, event ws.Event)
}

// submitter runs a session's Submit and fans the outcome out to metrics and
// the live update hub. Shared by the JSON and HTML surfaces.
type submitter struct {
	hub     Broadcaster
	metrics *metrics.Metrics
}

func (s submitter) submit(ctx context.Context, ctrl *session.Controller) (*service.Order, error) {
	order, err := ctrl.Submit()
	if err != nil {
		if reason := validationReason(err); reason != "" && s.metrics != nil {
			s.metrics.ValidationFailures.WithLabelValues(reason).Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.OrdersSubmitted.Inc()
	}

	sessionID, ok := middleware.SessionIDFromContext(ctx)
	if ok && s.hub != nil {
		event, err := ws.NewEvent(enum.EventOrderCreated, toOrderResponse(order))
		if err != nil {
			log.Printf("ERROR: build order event: %v", err)
			return order, nil
		}
		s.hub.BroadcastToSession(sessionID, event)
	}
	return order, nil
}
