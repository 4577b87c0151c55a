package ws

import "context"

type IHub interface {
	Run(ctx context.Context)
	RegisterClient(client *UserClient)
	UnregisterClient(client *UserClient)
	// SendToUser delivers message to every connection of userId.
	SendToUser(userId int64, message []byte)
	GetClientCount() int
}
