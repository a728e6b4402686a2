package tops

// decoder is implemented by message bodies that can parse themselves out of
// a packetDecoder.
type decoder interface {
	decode(pd packetDecoder) error
}

// encoder is the write-side counterpart. Body lengths are static, so
// encoding cannot fail.
type encoder interface {
	encode(pe packetEncoder)
}
