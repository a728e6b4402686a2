/*
Package tops implements a decoder for version 1.6 of the IEX TOPS binary
market-data protocol.

TOPS is a stream of tagged, fixed-length records: system events, top-of-book
quote updates, trade reports, and a handful of administrative message types.
DecodeMessage turns the bytes at a message boundary into exactly one typed
record plus the unconsumed remainder; Stream wraps an io.Reader and owns the
buffer-and-retry loop for callers consuming a live or recorded feed.

The decoder is purely functional: it borrows the input buffer for the
duration of one call, shares no state between calls, and is safe for any
number of concurrent callers.
*/
package tops

import (
	"io"
	"log"
)

// Logger is the instance of a StdLogger interface that the package writes
// connection-independent diagnostics to. By default it is set to discard
// all log messages, but you can set it to redirect wherever you want.
var Logger StdLogger = log.New(io.Discard, "[tops] ", log.LstdFlags)

// StdLogger is used to log messages.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
