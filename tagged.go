package lfqueue

// taggedPtr packs a slot index and a version tag into one CAS-able
// word. A native tagged pointer would steal the low bits of an aligned
// node address, but the garbage collector requires every
// unsafe.Pointer it can observe to be a valid pointer at every safe
// point, so stealing address bits is not legal here. A taggedPtr packs
// a slot index and a version tag into one uint64 instead.
type taggedPtr uint64

// indexNone is the taggedPtr index reserved to mean "no node".
const indexNone = ^uint32(0)

// nullPtr is the zero-tag taggedPtr with no referenced slot.
const nullPtr taggedPtr = taggedPtr(indexNone) << 32

func packTagged(index, tag uint32) taggedPtr {
	return taggedPtr(index)<<32 | taggedPtr(tag)
}

func (p taggedPtr) index() uint32 {
	return uint32(p >> 32)
}

func (p taggedPtr) tag() uint32 {
	return uint32(p)
}

func (p taggedPtr) withTag(tag uint32) taggedPtr {
	return packTagged(p.index(), tag)
}

func (p taggedPtr) isNull() bool {
	return p.index() == indexNone
}
