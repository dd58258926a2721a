// Package pod5footer holds hand-written flatbuffers table accessors for the
// POD5 footer schema, written in the style flatc itself generates rather
// than from a compiled .fbs schema, since no flatc toolchain is available
// here. The wire format is identical to what flatc would produce for:
//
//	table EmbeddedFile {
//	  offset:long;
//	  length:long;
//	  content_type:byte;
//	}
//
//	table Footer {
//	  file_identifier:string;
//	  software:string;
//	  pod5_version:string;
//	  contents:[EmbeddedFile];
//	}
//
//	root_type Footer;
package pod5footer

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// EmbeddedFile is a generated-style accessor over one footer entry.
type EmbeddedFile struct {
	_tab flatbuffers.Table
}

// GetRootAsEmbeddedFile is only used when an EmbeddedFile is read standalone
// (normally it is reached through Footer.Contents).
func GetRootAsEmbeddedFile(buf []byte, offset flatbuffers.UOffsetT) *EmbeddedFile {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &EmbeddedFile{}
	x.Init(buf, n+offset)

	return x
}

func (rcv *EmbeddedFile) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *EmbeddedFile) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *EmbeddedFile) Offset() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *EmbeddedFile) Length() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *EmbeddedFile) ContentType() int8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetInt8(o + rcv._tab.Pos)
	}

	return 0
}

func EmbeddedFileStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func EmbeddedFileAddOffset(builder *flatbuffers.Builder, offset int64) {
	builder.PrependInt64Slot(0, offset, 0)
}

func EmbeddedFileAddLength(builder *flatbuffers.Builder, length int64) {
	builder.PrependInt64Slot(1, length, 0)
}

func EmbeddedFileAddContentType(builder *flatbuffers.Builder, contentType int8) {
	builder.PrependInt8Slot(2, contentType, 0)
}

func EmbeddedFileEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
