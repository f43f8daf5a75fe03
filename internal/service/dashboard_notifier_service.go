// FILE: internal/service/dashboard_notifier_service.go
package service

import (
	"context"

	"harvestguard-be/internal/constant"
	"harvestguard-be/internal/pkg/logger"
	"harvestguard-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// RiskAlertDelivery defines how serious-risk events reach connected clients.
// Typically implemented by the WebSocket Hub.
type RiskAlertDelivery interface {
	Broadcast(payload []byte)
}

// IDashboardNotifierService owns the dashboard view state. The risk
// aggregator only emits events; this consumer decides that a serious risk
// switches the active tab to recommendations, and pushes the event out.
type IDashboardNotifierService interface {
	Consume(ctx context.Context) error
}

type dashboardNotifierService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	selectionRepo contract.SelectionRepository
	delivery      RiskAlertDelivery
	logger        logger.ILogger
}

func NewDashboardNotifierService(
	pubSub *gochannel.GoChannel,
	topicName string,
	selectionRepo contract.SelectionRepository,
	delivery RiskAlertDelivery,
	log logger.ILogger,
) IDashboardNotifierService {
	return &dashboardNotifierService{
		pubSub:        pubSub,
		topicName:     topicName,
		selectionRepo: selectionRepo,
		delivery:      delivery,
		logger:        log,
	}
}

func (s *dashboardNotifierService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *dashboardNotifierService) processMessage(ctx context.Context, msg *message.Message) {
	// Last write wins; a stale serious-risk event after a reset simply sets
	// a tab the guard will ignore on the next state read.
	if err := s.selectionRepo.Set(ctx, constant.KeyActiveTab, constant.TabRecommendations); err != nil {
		s.logger.Error("DashboardNotifier", "Failed to switch active tab", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	if s.delivery != nil {
		s.delivery.Broadcast(msg.Payload)
	}

	s.logger.Info("DashboardNotifier", "Serious risk processed, active tab switched to recommendations", nil)
	msg.Ack()
}
