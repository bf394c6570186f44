package kafka

import (
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// TrafficEvent 前端埋点经采集网关写入 Kafka 的流量事件
type TrafficEvent struct {
	ArticleID uint64    `json:"article_id"`
	UserID    uint64    `json:"user_id,omitempty"`
	At        time.Time `json:"at"`
}

// ToTrafficEvent 解析流量事件消息
func ToTrafficEvent(msg *sarama.ConsumerMessage) (*TrafficEvent, error) {
	var event TrafficEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("unmarshal traffic event error", "err", err)
		return nil, ErrEventInvalid
	}
	if event.ArticleID == 0 {
		return nil, ErrEventInvalid
	}
	return &event, nil
}
