package pod5footer

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Footer is a generated-style accessor over the root footer table.
type Footer struct {
	_tab flatbuffers.Table
}

// GetRootAsFooter reads the root Footer table out of buf.
func GetRootAsFooter(buf []byte, offset flatbuffers.UOffsetT) *Footer {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Footer{}
	x.Init(buf, n+offset)

	return x
}

func (rcv *Footer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Footer) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Footer) FileIdentifier() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}

	return nil
}

func (rcv *Footer) Software() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}

	return nil
}

func (rcv *Footer) Pod5Version() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}

	return nil
}

// ContentsLength returns the number of entries in the contents vector, or 0
// if the field is absent.
func (rcv *Footer) ContentsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}

	return 0
}

// Contents returns the j-th entry of the contents vector. The caller must
// check j against ContentsLength first.
func (rcv *Footer) Contents(j int) *EmbeddedFile {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o == 0 {
		return nil
	}
	a := rcv._tab.Vector(o)
	x := a + flatbuffers.UOffsetT(j)*4
	x = rcv._tab.Indirect(x)

	ef := &EmbeddedFile{}
	ef.Init(rcv._tab.Bytes, x)

	return ef
}

// HasContents reports whether the footer carries a contents field at all,
// distinguishing "empty list" from "field omitted".
func (rcv *Footer) HasContents() bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))

	return o != 0
}

func FooterStart(builder *flatbuffers.Builder) {
	builder.StartObject(4)
}

func FooterAddFileIdentifier(builder *flatbuffers.Builder, fileIdentifier flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, fileIdentifier, 0)
}

func FooterAddSoftware(builder *flatbuffers.Builder, software flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, software, 0)
}

func FooterAddPod5Version(builder *flatbuffers.Builder, version flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, version, 0)
}

func FooterAddContents(builder *flatbuffers.Builder, contents flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, contents, 0)
}

func FooterStartContentsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func FooterEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
