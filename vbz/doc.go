// Package vbz implements the VBZ signal codec: a four-stage pipeline
// (delta, zig-zag, stream-vbyte-16, outer block compression) used to
// compress the sequence of 16-bit signed ADC samples carried by each
// SignalTable row.
//
// The codec operates on one row's samples at a time and is pure and
// allocation-only; it performs no I/O. Encode and Decode must never be
// called across concatenated row blobs; each row is an independent codec
// unit.
//
// Pipeline (encode): delta -> zig-zag -> stream-vbyte-16 -> outer compress.
// Decode reverses the four stages in the opposite order.
package vbz
