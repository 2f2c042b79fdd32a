package constants

// Redis pub/sub channel formats. One channel per session for payment
// events, one per session for punch events. Delivery is fire-and-forget
// and at-most-once: receivers write the session store before publishing
// so late subscribers can fall back to reading the store.
const (
	ChannelPaymentUpdates = "payment:updates:%s" // Format: payment:updates:{session_id}
	ChannelPunchResults   = "punch:results:%s"   // Format: punch:results:{session_id}
)
