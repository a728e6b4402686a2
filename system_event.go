package tops

import (
	"fmt"
	"time"
)

// SystemEventType identifies the feed-wide trading phase transition carried
// by a SystemEvent message. The constants are the wire byte values; note
// they are a separate namespace from the top-level message tags (0x4F means
// StartOfMessages here but OperationalHaltStatus at the message level).
type SystemEventType byte

const (
	StartOfMessages     SystemEventType = 0x4F
	StartOfSystemHours  SystemEventType = 0x53
	StartOfRegularHours SystemEventType = 0x52
	EndOfRegularHours   SystemEventType = 0x4D
	EndOfSystemHours    SystemEventType = 0x45
	EndOfMessages       SystemEventType = 0x43
)

func (t SystemEventType) String() string {
	switch t {
	case StartOfMessages:
		return "start of messages"
	case StartOfSystemHours:
		return "start of system hours"
	case StartOfRegularHours:
		return "start of regular hours"
	case EndOfRegularHours:
		return "end of regular hours"
	case EndOfSystemHours:
		return "end of system hours"
	case EndOfMessages:
		return "end of messages"
	}
	return fmt.Sprintf("unknown system event %#02x", byte(t))
}

// SystemEvent marks the start or end of a trading phase for the entire
// feed.
type SystemEvent struct {
	Type      SystemEventType
	Timestamp time.Time
}

func (m *SystemEvent) tag() byte { return tagSystemEvent }

func (m *SystemEvent) bodyLength() int { return 1 + 8 } // subtype + timestamp

func (m *SystemEvent) decode(pd packetDecoder) (err error) {
	subtype, err := pd.getUint8()
	if err != nil {
		return err
	}
	switch SystemEventType(subtype) {
	case StartOfMessages, StartOfSystemHours, StartOfRegularHours,
		EndOfRegularHours, EndOfSystemHours, EndOfMessages:
		m.Type = SystemEventType(subtype)
	default:
		return PacketDecodingError{fmt.Sprintf("unknown system event subtype %#02x", subtype)}
	}

	m.Timestamp, err = pd.getTimestamp()
	return err
}

func (m *SystemEvent) encode(pe packetEncoder) {
	pe.putUint8(byte(m.Type))
	pe.putTimestamp(m.Timestamp)
}
