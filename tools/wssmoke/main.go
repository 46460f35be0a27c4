// Command wssmoke opens a live notification socket, sends a ping and prints
// every frame it receives until interrupted.
//
//	go run ./tools/wssmoke -url ws://localhost:8080/ws/notifications -token $JWT
package main

import (
	"flag"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
)

func main() {
	rawURL := flag.String("url", "ws://localhost:8080/ws/notifications", "socket endpoint")
	token := flag.String("token", os.Getenv("FANZ_TOKEN"), "bearer token for the user to listen as")
	pingEvery := flag.Duration("ping", 30*time.Second, "client ping interval")
	flag.Parse()

	if *token == "" {
		log.Fatal("a token is required (-token or FANZ_TOKEN)")
	}
	u, err := url.Parse(*rawURL)
	if err != nil {
		log.Fatalf("invalid url: %v", err)
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+*token)
	conn, resp, err := websocket.DefaultDialer.Dial(u.String(), header)
	if err != nil {
		if resp != nil {
			log.Fatalf("dial failed: %v (status %d)", err, resp.StatusCode)
		}
		log.Fatalf("dial failed: %v", err)
	}
	defer func() { _ = conn.Close() }()
	log.Printf("connected to %s", u.String())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				log.Printf("read: %v", err)
				return
			}
			log.Printf("frame: %s", msg)
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	ping := func() {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)); err != nil {
			log.Printf("ping: %v", err)
		}
	}
	ping()
	ticker := time.NewTicker(*pingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			ping()
		case <-interrupt:
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			select {
			case <-done:
			case <-time.After(time.Second):
			}
			return
		}
	}
}
