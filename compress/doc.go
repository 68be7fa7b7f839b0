// Package compress provides whole-buffer compression codecs for hybf file
// plumbing.
//
// The container format itself is never compressed by these codecs: the
// per-column encodings inside the container are chosen by the encoding
// selector. What this package compresses is the finished container bytes
// when a caller opts into file-level compression via hybf.WriteFile.
//
// Zstandard has two implementations: the default pure-Go encoder from
// klauspost/compress, and an opt-in cgo binding to libzstd (valyala/gozstd)
// selected with the "gozstd" build tag.
package compress
