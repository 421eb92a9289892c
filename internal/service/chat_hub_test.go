package service

import (
	"testing"
	"time"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
)

func TestPeer(t *testing.T) {
	h := NewChatHub(nil, nil)
	conv := &model.Conversation{UserID: 5, CounselorUID: 9}

	cases := []struct {
		name     string
		senderID uint
		want     uint
	}{
		{"user side", 5, 9},
		{"counselor side", 9, 5},
		{"stranger", 42, 0},
	}
	for _, c := range cases {
		if got := h.peer(conv, c.senderID); got != c.want {
			t.Fatalf("%s: peer = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestDetachAfterStop(t *testing.T) {
	h := NewChatHub(nil, nil)
	h.Stop()

	done := make(chan struct{})
	go func() {
		h.detach(&Client{UserID: 1})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("detach blocked after the hub was stopped")
	}
}
