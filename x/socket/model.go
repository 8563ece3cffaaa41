package socket

// ChannelRequest is the subscription update a client sends over the socket
type ChannelRequest struct {
	Channels []string `json:"channels"`
}
