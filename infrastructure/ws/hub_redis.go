package ws

import (
	"context"
	"encoding/json"
	"strconv"

	"hotelchat/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const redisChannelPrefix = "inbox:"

// RedisHub delivers to local connections and relays every message through
// Redis so the other server instances reach their own connections of the
// same user.
type RedisHub struct {
	registry

	redisClient *redis.Client
	serverId    string

	Register   chan *UserClient
	Unregister chan *UserClient
	done       chan struct{}
}

type RedisMessage struct {
	FromServerId string `json:"fromServerId"`
	ToUserId     int64  `json:"toUserId"`
	Payload      []byte `json:"payload"`
}

func NewRedisHub(redisClient *redis.Client, serverId string) IHub {
	return &RedisHub{
		registry:    newRegistry(),
		redisClient: redisClient,
		serverId:    serverId,
		Register:    make(chan *UserClient),
		Unregister:  make(chan *UserClient),
		done:        make(chan struct{}),
	}
}

func (h *RedisHub) Run(ctx context.Context) {
	defer close(h.done)

	pubsub := h.redisClient.PSubscribe(ctx, redisChannelPrefix+"*")
	defer pubsub.Close()

	go h.subscribeRedis(pubsub.Channel())

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.Register:
			h.add(client)
			logger.Debug("[%s] user %d connected (%s)", h.serverId, client.UserId, client.Id)

		case client := <-h.Unregister:
			if h.remove(client) {
				logger.Debug("[%s] user %d disconnected (%s)", h.serverId, client.UserId, client.Id)
			}
		}
	}
}

func (h *RedisHub) subscribeRedis(ch <-chan *redis.Message) {
	logger.Info("[%s] Redis subscriber started", h.serverId)

	for msg := range ch {
		var redisMsg RedisMessage
		if err := json.Unmarshal([]byte(msg.Payload), &redisMsg); err != nil {
			logger.Warn("Error unmarshaling Redis message: %v", err)
			continue
		}

		if redisMsg.FromServerId == h.serverId {
			continue
		}

		if !h.has(redisMsg.ToUserId) {
			continue
		}

		h.deliver(redisMsg.ToUserId, redisMsg.Payload)
	}
}

func (h *RedisHub) SendToUser(userId int64, message []byte) {
	h.deliver(userId, message)
	h.publishToRedis(userId, message)
}

func (h *RedisHub) publishToRedis(userId int64, message []byte) {
	msgBytes, err := json.Marshal(RedisMessage{
		FromServerId: h.serverId,
		ToUserId:     userId,
		Payload:      message,
	})
	if err != nil {
		logger.Error("Error marshaling Redis message: %v", err)
		return
	}

	if err := h.redisClient.Publish(context.Background(), redisChannel(userId), msgBytes).Err(); err != nil {
		logger.Error("Error publishing to Redis: %v", err)
	}
}

func (h *RedisHub) GetClientCount() int {
	return h.count()
}

func (h *RedisHub) RegisterClient(client *UserClient) {
	select {
	case h.Register <- client:
	case <-h.done:
		client.closeSend()
	}
}

func (h *RedisHub) UnregisterClient(client *UserClient) {
	select {
	case h.Unregister <- client:
	case <-h.done:
	}
}

func redisChannel(userId int64) string {
	return redisChannelPrefix + strconv.FormatInt(userId, 10)
}
