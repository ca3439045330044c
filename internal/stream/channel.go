package stream

// ChannelEmitter collects events on a channel, for tests and for
// bridging runs into other transports.
type ChannelEmitter struct {
	Ch chan Event
}

func NewChannelEmitter(buf int) *ChannelEmitter {
	return &ChannelEmitter{Ch: make(chan Event, buf)}
}

func (c *ChannelEmitter) Emit(ev Event) error {
	c.Ch <- ev
	return nil
}
