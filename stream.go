package tops

import (
	"errors"
	"io"

	"github.com/eapache/queue"
	"github.com/rcrowley/go-metrics"
)

// Stream decodes messages progressively from an io.Reader, owning the
// buffer-and-retry loop around ErrInsufficientData. One refill may complete
// several messages; they are queued and handed out one per Next call.
//
// A Stream is not safe for concurrent use. Decode independent Streams
// concurrently instead; the decoder itself shares no state between calls.
type Stream[S Symbol] struct {
	conf    *Config
	reader  io.Reader
	buf     []byte
	pending *queue.Queue
	err     error

	incomingByteRate    metrics.Meter
	incomingMessageRate metrics.Meter
	messageSize         metrics.Histogram
}

// NewStream wraps reader with a message decoder. A nil conf is equivalent
// to NewConfig().
func NewStream[S Symbol](reader io.Reader, conf *Config) (*Stream[S], error) {
	if conf == nil {
		conf = NewConfig()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &Stream[S]{
		conf:                conf,
		reader:              reader,
		pending:             queue.New(),
		incomingByteRate:    metrics.GetOrRegisterMeter("incoming-byte-rate", conf.MetricRegistry),
		incomingMessageRate: metrics.GetOrRegisterMeter("incoming-message-rate", conf.MetricRegistry),
		messageSize:         getOrRegisterHistogram("message-size", conf.MetricRegistry),
	}, nil
}

// Next returns the next decoded message. io.EOF signals a clean end of the
// feed at a message boundary, io.ErrUnexpectedEOF a feed that ended inside
// a message. Decoding errors are sticky: the feed has no framing to
// resynchronize on after a malformed message.
func (s *Stream[S]) Next() (Message[S], error) {
	for {
		if s.pending.Length() > 0 {
			return s.pending.Remove().(Message[S]), nil
		}
		if s.err != nil {
			return nil, s.err
		}
		s.fill()
	}
}

func (s *Stream[S]) fill() {
	chunk := make([]byte, s.conf.ReadSize)
	n, err := s.reader.Read(chunk)
	if n > 0 {
		s.incomingByteRate.Mark(int64(n))
		s.buf = append(s.buf, chunk[:n]...)
		s.drain()
	}
	if err == nil || s.err != nil {
		return
	}
	if errors.Is(err, io.EOF) {
		if len(s.buf) > 0 {
			err = io.ErrUnexpectedEOF
		}
	}
	s.err = err
}

// drain decodes every complete message currently buffered.
func (s *Stream[S]) drain() {
	for len(s.buf) > 0 {
		msg, rest, err := DecodeMessage[S](s.buf)
		if errors.Is(err, ErrInsufficientData) {
			return
		}
		if err != nil {
			Logger.Printf("stream: aborting after undecodable message: %v\n", err)
			s.err = err
			s.buf = nil
			return
		}

		s.incomingMessageRate.Mark(1)
		s.messageSize.Update(int64(len(s.buf) - len(rest)))
		getOrRegisterKindMeter("incoming-message-rate", msg.tag(), s.conf.MetricRegistry).Mark(1)

		s.pending.Add(msg)
		s.buf = rest
	}
}
