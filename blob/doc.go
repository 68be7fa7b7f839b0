// Package blob assembles and disassembles hybf containers in memory.
//
// EncodeTable is the write-side dispatcher: it analyses every column,
// estimates the raw payload size, and emits either the Minimal container
// (small tables, raw columns, no per-column framing) or the Compressed
// container (each column independently encoded by the selector and framed
// with a codec tag and payload length). DecodeTable reads either variant
// back; Sniff validates nothing but the 8-byte header.
package blob
