package kafka

import (
	"Masthead/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

type ViewsHandler struct {
	articleSvc service.ArticleService
}

func NewViewsHandler(articleSvc service.ArticleService) *ViewsHandler {
	return &ViewsHandler{articleSvc: articleSvc}
}

func (s *ViewsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("article view consumer setup")
	return nil
}

func (s *ViewsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("article view consumer cleanup")
	return nil
}

func (s *ViewsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-view consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-view process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ViewsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToTrafficEvent(msg)
	if err != nil {
		return err
	}
	return s.articleSvc.TrackView(ctx, event.ArticleID)
}
