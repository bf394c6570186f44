package kafka

import (
	"errors"
	"testing"

	"github.com/IBM/sarama"
)

func TestToTrafficEvent(t *testing.T) {
	msg := &sarama.ConsumerMessage{
		Value: []byte(`{"article_id":1234,"user_id":7,"at":"2026-03-01T00:30:00Z"}`),
	}
	event, err := ToTrafficEvent(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.ArticleID != 1234 || event.UserID != 7 {
		t.Errorf("got %+v", event)
	}
}

func TestToTrafficEventInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"malformed json", `{"article_id":`},
		{"missing article id", `{"user_id":7}`},
		{"zero article id", `{"article_id":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToTrafficEvent(&sarama.ConsumerMessage{Value: []byte(tt.value)})
			if !errors.Is(err, ErrEventInvalid) {
				t.Errorf("got %v, want ErrEventInvalid", err)
			}
		})
	}
}
