package amqp

// Channel is exported for testing
type Channel = channel

// NewWithChannel builds a Publisher around an already opened channel for testing
func NewWithChannel(ch Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}
