package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	"wedding_planner/config"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	rooms = make(map[uint]*planRoom)
	mu    sync.Mutex
)

// planRoom holds every socket watching one floor plan. A single goroutine
// subscribes to the plan's redis channel and fans messages out, so each
// update reaches each client exactly once.
type planRoom struct {
	conns  map[*websocket.Conn]bool
	cancel context.CancelFunc
}

func getRedis() *redis.Client {
	redisOnce.Do(func() {
		addr := config.Config("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	})
	return redisClient
}

// PublishFloorPlanUpdate broadcasts a mutation to everyone watching the plan.
func PublishFloorPlanUpdate(floorPlanId uint, action string, payload any) {
	msg, err := json.Marshal(struct {
		Action  string `json:"action"`
		Payload any    `json:"payload"`
	}{Action: action, Payload: payload})
	if err != nil {
		log.Printf("failed to marshal floor plan update: %v", err)
		return
	}

	channel := fmt.Sprintf("floorplan:%d", floorPlanId)
	if err := getRedis().Publish(context.Background(), channel, msg).Err(); err != nil {
		log.Printf("failed to publish floor plan update: %v", err)
	}
}

func joinRoom(planId uint, c *websocket.Conn) {
	mu.Lock()
	defer mu.Unlock()

	room := rooms[planId]
	if room == nil {
		ctx, cancel := context.WithCancel(context.Background())
		room = &planRoom{conns: make(map[*websocket.Conn]bool), cancel: cancel}
		rooms[planId] = room
		go subscribeRoom(ctx, planId)
	}
	room.conns[c] = true
}

func leaveRoom(planId uint, c *websocket.Conn) {
	mu.Lock()
	defer mu.Unlock()

	room := rooms[planId]
	if room == nil {
		return
	}
	delete(room.conns, c)
	if len(room.conns) == 0 {
		room.cancel()
		delete(rooms, planId)
	}
}

func subscribeRoom(ctx context.Context, planId uint) {
	pubsub := getRedis().Subscribe(ctx, fmt.Sprintf("floorplan:%d", planId))
	defer pubsub.Close()

	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			broadcast(planId, []byte(msg.Payload))
		}
	}
}

func broadcast(planId uint, payload []byte) {
	mu.Lock()
	defer mu.Unlock()

	room := rooms[planId]
	if room == nil {
		return
	}
	for conn := range room.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(room.conns, conn)
		}
	}
}

// FloorPlanWebsocket parks a connection in its plan's room until the client
// hangs up. Updates arrive through the room's subscriber, not per socket.
func FloorPlanWebsocket(c *websocket.Conn) {
	planIdStr := c.Params("floorPlanId")
	id64, _ := strconv.ParseUint(planIdStr, 10, 64)
	planId := uint(id64)

	joinRoom(planId, c)
	defer func() {
		leaveRoom(planId, c)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
