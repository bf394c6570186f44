package kafka

import (
	"Masthead/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

type LikesHandler struct {
	articleSvc service.ArticleService
}

func NewLikesHandler(articleSvc service.ArticleService) *LikesHandler {
	return &LikesHandler{articleSvc: articleSvc}
}

func (s *LikesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("article like consumer setup")
	return nil
}

func (s *LikesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("article like consumer cleanup")
	return nil
}

func (s *LikesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-like consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-like process batch error", "err", err)
		return err
	}
	return nil
}

func (s *LikesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToTrafficEvent(msg)
	if err != nil {
		return err
	}
	return s.articleSvc.TrackLike(ctx, event.ArticleID)
}
