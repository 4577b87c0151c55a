package ws

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, c *UserClient) []byte {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
		return nil
	}
}

func TestHub_DeliversToEveryConnectionOfUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	tab1 := NewClient(7, "tok", hub, nil)
	tab2 := NewClient(7, "tok", hub, nil)
	other := NewClient(8, "tok", hub, nil)
	hub.RegisterClient(tab1)
	hub.RegisterClient(tab2)
	hub.RegisterClient(other)

	assert.Eventually(t, func() bool { return hub.GetClientCount() == 3 }, time.Second, time.Millisecond)

	hub.SendToUser(7, []byte("hello"))
	assert.Equal(t, "hello", string(receive(t, tab1)))
	assert.Equal(t, "hello", string(receive(t, tab2)))
	assert.Empty(t, other.send)

	hub.UnregisterClient(tab1)
	assert.Eventually(t, func() bool { return hub.GetClientCount() == 2 }, time.Second, time.Millisecond)

	_, open := <-tab1.send
	assert.False(t, open)

	hub.UnregisterClient(tab1)
	assert.Equal(t, 2, hub.GetClientCount())
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	c := NewClient(1, "tok", hub, nil)
	hub.RegisterClient(c)
	cancel()
	<-stopped

	_, open := <-c.send
	assert.False(t, open)

	// Must not block once the hub is gone.
	hub.UnregisterClient(c)
	late := NewClient(2, "tok", hub, nil)
	hub.RegisterClient(late)
	_, open = <-late.send
	assert.False(t, open)
}

func TestClient_SendFullBuffer(t *testing.T) {
	c := NewClient(1, "tok", nil, nil)
	for i := 0; i < sendBuffer; i++ {
		require.True(t, c.Send([]byte("x")))
	}
	assert.False(t, c.Send([]byte("overflow")))
}

func TestRedisHub_RelaysAcrossServers(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	a := NewRedisHub(rdb, "server-a")
	b := NewRedisHub(rdb, "server-b")
	go a.Run(ctx)
	go b.Run(ctx)

	remote := NewClient(42, "tok", b, nil)
	b.RegisterClient(remote)
	time.Sleep(100 * time.Millisecond)

	a.SendToUser(42, []byte("ping"))
	assert.Equal(t, "ping", string(receive(t, remote)))
}
