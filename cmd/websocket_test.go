package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"boutiqueBack/internal/models"
)

func TestPriceFeedBroadcast(t *testing.T) {
	feed := NewPriceFeed()
	go feed.Run()

	srv := httptest.NewServer(http.HandlerFunc(feed.ServeWS))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Registration happens after the handshake; keep broadcasting until
	// the frame lands.
	done := make(chan struct{})
	go func() {
		updates := []models.PriceUpdate{{ProductID: "p1", CurrentPrice: 42, DayCount: 3}}
		for {
			select {
			case <-done:
				return
			default:
				feed.Broadcast(updates)
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	defer close(done)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got []models.PriceUpdate
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if len(got) != 1 || got[0].ProductID != "p1" || got[0].CurrentPrice != 42 || got[0].DayCount != 3 {
		t.Fatalf("unexpected update frame: %+v", got)
	}
}
