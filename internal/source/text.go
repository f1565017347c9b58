package source

// Text is the payload of a token. It is either a Borrowed view of memory the
// holder does not own, or an *Owned buffer the holder owns exclusively.
type Text interface {
	String() string
	Bytes() []byte
	Len() int

	isText()
}

// Borrowed aliases the input buffer or a fixed literal. It has no mutators,
// so nothing reachable through it can change or release the aliased bytes.
type Borrowed struct {
	s string
}

// FromReference wraps s without copying it.
func FromReference(s string) Borrowed {
	return Borrowed{s: s}
}

func (b Borrowed) String() string { return b.s }
func (b Borrowed) Len() int       { return len(b.s) }

// Bytes returns a fresh copy of the referenced bytes.
func (b Borrowed) Bytes() []byte { return []byte(b.s) }

func (Borrowed) isText() {}

// Owned is a heap buffer held by exactly one token.
type Owned struct {
	buf []byte
}

// FromOwned takes ownership of buf; the caller must not use buf afterwards.
func FromOwned(buf []byte) *Owned {
	return &Owned{buf: buf}
}

// FromSlice copies length bytes of src starting at offset into a new buffer.
func FromSlice(src string, offset, length int) *Owned {
	buf := make([]byte, length)
	copy(buf, src[offset:offset+length])
	return &Owned{buf: buf}
}

func (o *Owned) String() string { return string(o.buf) }
func (o *Owned) Len() int       { return len(o.buf) }

// Bytes returns the owned buffer itself.
func (o *Owned) Bytes() []byte { return o.buf }

// Assign replaces the contents with a copy of s, dropping the previous buffer.
func (o *Owned) Assign(s string) {
	o.Reset()
	o.buf = []byte(s)
}

// Reset releases the buffer.
func (o *Owned) Reset() {
	o.buf = nil
}

func (*Owned) isText() {}
