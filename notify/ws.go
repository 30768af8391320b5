package notify

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"tripdesk/db"
	"tripdesk/middleware"
	"tripdesk/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WebSocketHandler upgrades a dashboard connection and streams reminders
// to it. Browsers cannot set headers on websocket requests, so the token
// rides in the query string.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		claims, err := middleware.ValidateRawToken(r.URL.Query().Get("token"))
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Send:   make(chan []byte, 256),
			UserID: claims.UserID,
		}

		hub.register <- client
		go replayHistory(hub, client)
		go writePump(client, conn)
		go readPump(client, conn, hub)
	}
}

// replayHistory pushes the last 20 reminders to a fresh connection so a
// new tab is not empty. Frames go through the hub, which is the only
// goroutine allowed to touch a client's Send channel.
func replayHistory(hub *Hub, client *Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(20)

	cur, err := db.NotificationCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("history find:", err)
		return
	}
	defer cur.Close(ctx)

	var history []models.Reminder
	if err := cur.All(ctx, &history); err != nil {
		log.Println("history decode:", err)
		return
	}
	for i := len(history) - 1; i >= 0; i-- {
		if data, err := json.Marshal(history[i]); err == nil {
			hub.Deliver(client, data)
		}
	}
}

func writePump(c *Client, conn *websocket.Conn) {
	defer conn.Close()
	for msg := range c.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump drains the connection so pings and close frames are handled;
// clients never send application data.
func readPump(c *Client, conn *websocket.Conn, hub *Hub) {
	defer func() {
		hub.unregister <- c
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
