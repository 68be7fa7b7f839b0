// Package encoding implements the hybf column codecs and the primitives
// they share.
//
// The low level is a pair of byte I/O primitives: a bounds-checked Reader
// over a payload slice, and append helpers over a pooled ByteBuffer. On top
// of them sit the element codecs (one raw element per storage type) and the
// MSB-first bit packer that serves both dictionary code streams and any
// other fixed-width code sequence.
//
// The high level is the Codec capability set (tag, size estimate, encode,
// decode) with one implementation per payload shape: Raw, SingleValue, RLE,
// Dictionary and Null, plus the selector that picks the cheapest applicable
// codec per column from single-pass statistics.
package encoding
