package marshal

import (
	"fmt"
	"os"
	"strconv"
)

const supportedMajor = 4
const supportedMinor = 8

// decoder walks a Marshal byte stream left to right, maintaining the two
// back-reference tables Ruby's format defines: a symbol table (linked via
// tag ';') and an object table (linked via tag '@'). Fixnum/nil/true/false
// are never entered into the object table, matching Ruby's own marshal.c.
type decoder struct {
	buf     []byte
	pos     int
	symbols []string
	objects []*Node
}

// Parse decodes a complete Marshal byte stream into a Node tree.
func Parse(data []byte) (*Node, error) {
	if len(data) < 2 {
		return nil, NewDecodeError(0, fmt.Errorf("%w: stream too short for version header", ErrMalformed))
	}
	if data[0] != supportedMajor || data[1] > supportedMinor {
		return nil, NewDecodeError(0, fmt.Errorf("%w: unsupported marshal version %d.%d", ErrMalformed, data[0], data[1]))
	}
	d := &decoder{buf: data, pos: 2}
	return d.readNode()
}

// ParseFile reads and decodes the Marshal stream at path.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDecodeError(0, fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	return Parse(data)
}

func (d *decoder) fail(msg string) error {
	return NewDecodeError(d.pos, fmt.Errorf("%w: %s", ErrMalformed, msg))
}

func (d *decoder) readByte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, d.fail("unexpected end of stream")
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) readBytes(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.buf) {
		return nil, d.fail("unexpected end of stream")
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// readLong decodes Ruby Marshal's variable-length integer encoding.
func (d *decoder) readLong() (int64, error) {
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	c := int8(b)
	switch {
	case c == 0:
		return 0, nil
	case c > 0 && c < 5:
		n := int64(0)
		for i := 0; i < int(c); i++ {
			by, err := d.readByte()
			if err != nil {
				return 0, err
			}
			n |= int64(by) << uint(8*i)
		}
		return n, nil
	case c >= 5:
		return int64(c) - 5, nil
	case c < -4:
		return int64(c) + 5, nil
	default:
		cnt := int(-c)
		n := int64(0)
		for i := 0; i < cnt; i++ {
			by, err := d.readByte()
			if err != nil {
				return 0, err
			}
			n |= int64(by) << uint(8*i)
		}
		n -= int64(1) << uint(8*cnt)
		return n, nil
	}
}

func (d *decoder) track(n *Node) *Node {
	d.objects = append(d.objects, n)
	return n
}

func (d *decoder) readNode() (*Node, error) {
	tag, err := d.readByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case '0':
		return &Node{Kind: KindNil}, nil
	case 'T':
		return &Node{Kind: KindBool, Bool: true}, nil
	case 'F':
		return &Node{Kind: KindBool, Bool: false}, nil
	case 'i':
		v, err := d.readLong()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindInt, Int: v}, nil
	case 'l':
		return d.readBignum()
	case 'f':
		return d.readFloat()
	case ':':
		return d.readSymbol()
	case ';':
		return d.readSymlink()
	case '"':
		return d.readRawString()
	case 'I':
		return d.readIVarWrapped()
	case '[':
		return d.readArray()
	case '{':
		return d.readHash()
	case 'o':
		return d.readObject()
	case 'u':
		return d.readUserData()
	case '@':
		return d.readLink()
	default:
		return nil, d.fail(fmt.Sprintf("unsupported tag %q", tag))
	}
}

func (d *decoder) readBignum() (*Node, error) {
	sign, err := d.readByte()
	if err != nil {
		return nil, err
	}
	wordCount, err := d.readLong()
	if err != nil {
		return nil, err
	}
	raw, err := d.readBytes(int(wordCount) * 2)
	if err != nil {
		return nil, err
	}
	var v int64
	for i := len(raw) - 1; i >= 0; i-- {
		v = v<<8 | int64(raw[i])
	}
	if sign == '-' {
		v = -v
	}
	n := &Node{Kind: KindInt, Int: v}
	d.track(n)
	return n, nil
}

func (d *decoder) readFloat() (*Node, error) {
	l, err := d.readLong()
	if err != nil {
		return nil, err
	}
	raw, err := d.readBytes(int(l))
	if err != nil {
		return nil, err
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return nil, d.fail("malformed float literal: " + err.Error())
	}
	n := &Node{Kind: KindFloat, Float: f}
	d.track(n)
	return n, nil
}

func (d *decoder) readSymbol() (*Node, error) {
	l, err := d.readLong()
	if err != nil {
		return nil, err
	}
	raw, err := d.readBytes(int(l))
	if err != nil {
		return nil, err
	}
	s := string(raw)
	d.symbols = append(d.symbols, s)
	return &Node{Kind: KindSymbol, Symbol: s}, nil
}

func (d *decoder) readSymlink() (*Node, error) {
	idx, err := d.readLong()
	if err != nil {
		return nil, err
	}
	if idx < 0 || int(idx) >= len(d.symbols) {
		return nil, d.fail("symbol link out of range")
	}
	return &Node{Kind: KindSymbol, Symbol: d.symbols[idx]}, nil
}

func (d *decoder) readRawString() (*Node, error) {
	l, err := d.readLong()
	if err != nil {
		return nil, err
	}
	raw, err := d.readBytes(int(l))
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindString, Bytes: append([]byte(nil), raw...)}
	d.track(n)
	return n, nil
}

// readIVarWrapped decodes Marshal's "I" tag: a wrapped node (almost
// always a String) followed by a count of instance-variable pairs. For
// strings, the wrapper conventionally carries the "E" (short encoding
// flag: true=UTF-8, false=US-ASCII) or "encoding" (named encoding string)
// ivar, which is lifted directly onto the wrapped String node's Encoding
// field rather than kept as a separate ivar (spec §3.1's "string nodes
// expose both the raw bytes and a decoded form honoring the embedded
// encoding tag").
func (d *decoder) readIVarWrapped() (*Node, error) {
	wrapped, err := d.readNode()
	if err != nil {
		return nil, err
	}
	count, err := d.readLong()
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < count; i++ {
		nameNode, err := d.readNode()
		if err != nil {
			return nil, err
		}
		valNode, err := d.readNode()
		if err != nil {
			return nil, err
		}
		if nameNode.Kind != KindSymbol {
			return nil, d.fail("instance variable name is not a symbol")
		}
		switch nameNode.Symbol {
		case "E":
			if valNode.Kind == KindBool && valNode.Bool {
				wrapped.Encoding = "UTF-8"
			} else {
				wrapped.Encoding = "US-ASCII"
			}
		case "encoding":
			if valNode.Kind == KindString {
				wrapped.Encoding = string(valNode.Bytes)
			}
		default:
			wrapped.IVars = append(wrapped.IVars, IVar{Name: nameNode.Symbol, Value: valNode})
		}
	}
	return wrapped, nil
}

func (d *decoder) readArray() (*Node, error) {
	count, err := d.readLong()
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindArray}
	d.track(n)
	n.Array = make([]*Node, count)
	for i := int64(0); i < count; i++ {
		el, err := d.readNode()
		if err != nil {
			return nil, err
		}
		n.Array[i] = el
	}
	return n, nil
}

func (d *decoder) readHash() (*Node, error) {
	count, err := d.readLong()
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindHash}
	d.track(n)
	n.Hash = make([]HashEntry, count)
	for i := int64(0); i < count; i++ {
		k, err := d.readNode()
		if err != nil {
			return nil, err
		}
		v, err := d.readNode()
		if err != nil {
			return nil, err
		}
		n.Hash[i] = HashEntry{Key: k, Value: v}
	}
	return n, nil
}

func (d *decoder) readObject() (*Node, error) {
	classNode, err := d.readNode()
	if err != nil {
		return nil, err
	}
	if classNode.Kind != KindSymbol {
		return nil, d.fail("object class name is not a symbol")
	}
	n := &Node{Kind: KindObject, ClassName: classNode.Symbol}
	d.track(n)
	count, err := d.readLong()
	if err != nil {
		return nil, err
	}
	n.IVars = make([]IVar, count)
	for i := int64(0); i < count; i++ {
		nameNode, err := d.readNode()
		if err != nil {
			return nil, err
		}
		if nameNode.Kind != KindSymbol {
			return nil, d.fail("instance variable name is not a symbol")
		}
		valNode, err := d.readNode()
		if err != nil {
			return nil, err
		}
		n.IVars[i] = IVar{Name: nameNode.Symbol, Value: valNode}
	}
	return n, nil
}

func (d *decoder) readUserData() (*Node, error) {
	classNode, err := d.readNode()
	if err != nil {
		return nil, err
	}
	if classNode.Kind != KindSymbol {
		return nil, d.fail("user-data class name is not a symbol")
	}
	l, err := d.readLong()
	if err != nil {
		return nil, err
	}
	raw, err := d.readBytes(int(l))
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindUserData, ClassName: classNode.Symbol, UserData: append([]byte(nil), raw...)}
	d.track(n)
	return n, nil
}

func (d *decoder) readLink() (*Node, error) {
	idx, err := d.readLong()
	if err != nil {
		return nil, err
	}
	if idx < 0 || int(idx) >= len(d.objects) {
		return nil, d.fail("object link out of range")
	}
	return d.objects[idx], nil
}
