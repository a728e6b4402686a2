package tops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var systemEventEndOfSystemHours = []byte{
	0x53, // SystemEvent
	0x45, // end of system hours
	0x00, 0xA0, 0x99, 0x97, 0xE9, 0x3D, 0xB6, 0x14, // 2017-04-17T17:00:00Z
}

func TestSystemEventReferenceVector(t *testing.T) {
	msg, remaining, err := DecodeMessage[string](systemEventEndOfSystemHours)
	require.NoError(t, err)
	require.Empty(t, remaining)

	event, ok := msg.(*SystemEvent)
	require.True(t, ok, "expected *SystemEvent, got %T", msg)

	require.Equal(t, EndOfSystemHours, event.Type)
	require.Equal(t, int64(1492448400000000000), event.Timestamp.UnixNano())
}

func TestSystemEventRoundTrip(t *testing.T) {
	msg, _, err := DecodeMessage[string](systemEventEndOfSystemHours)
	require.NoError(t, err)
	require.Equal(t, systemEventEndOfSystemHours, EncodeMessage[string](msg))
}

func TestSystemEventAllSubtypes(t *testing.T) {
	subtypes := map[byte]SystemEventType{
		0x4F: StartOfMessages,
		0x53: StartOfSystemHours,
		0x52: StartOfRegularHours,
		0x4D: EndOfRegularHours,
		0x45: EndOfSystemHours,
		0x43: EndOfMessages,
	}

	for wire, want := range subtypes {
		input := make([]byte, len(systemEventEndOfSystemHours))
		copy(input, systemEventEndOfSystemHours)
		input[1] = wire

		msg, _, err := DecodeMessage[string](input)
		require.NoError(t, err)
		require.Equal(t, want, msg.(*SystemEvent).Type)
	}
}

func TestSystemEventUnknownSubtype(t *testing.T) {
	input := make([]byte, len(systemEventEndOfSystemHours))
	copy(input, systemEventEndOfSystemHours)
	input[1] = 0x5A

	_, _, err := DecodeMessage[string](input)
	var decodingErr PacketDecodingError
	require.ErrorAs(t, err, &decodingErr)
}
