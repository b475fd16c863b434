package kcon

import "fmt"

// Argument constructors //////////////////////////////////////////

func Int(v int) Value {
	return Value{kind: VAL_INT, num: int64(v)}
}

func Int64(v int64) Value {
	return Value{kind: VAL_INT, num: v}
}

func Hex(v int) Value {
	return Value{kind: VAL_HEX, num: int64(v)}
}

func Ptr(p uintptr) Value {
	return Value{kind: VAL_PTR, ptr: p}
}

func Str(s string) Value {
	return Value{kind: VAL_STR, str: s}
}

func Bytes(p []byte) Value {
	return Value{kind: VAL_BYTES, bts: p}
}

// Rendering //////////////////////////////////////////

// enough for the 20 decimal digits of a 64-bit magnitude
const _NUM_BUF_SIZE = 20

const hexDigits = "0123456789abcdef"

// putInt renders v in the given base, sign first, no allocation: digits are
// collected least-significant-first in a stack buffer and emitted reversed.
func putInt(s Sink, v int64, base uint64) {
	var buf [_NUM_BUF_SIZE]byte
	u := uint64(v)
	if v < 0 {
		s.PutByte('-')
		u = -u // two's complement, correct for MinInt64 too
	}
	i := 0
	for {
		buf[i] = hexDigits[u%base]
		i++
		u /= base
		if u == 0 {
			break
		}
	}
	for i--; i >= 0; i-- {
		s.PutByte(buf[i])
	}
}

// putPtr renders an address as 0x plus 16 zero-padded lowercase hex digits.
func putPtr(s Sink, p uintptr) {
	s.PutByte('0')
	s.PutByte('x')
	for shift := 60; shift >= 0; shift -= 4 {
		s.PutByte(hexDigits[(uint64(p)>>uint(shift))&0xf])
	}
}

// renderTemplate is the format engine: it scans template left to right and
// pushes bytes to s, consuming one tagged argument per recognized directive
// (%d %x %p %s, with %% a literal percent). It takes no locks, the caller
// holds the console for the whole logical line.
//
// An unrecognized byte after '%' is not an error: both bytes are written
// verbatim so a malformed template stays diagnosable on the console instead
// of silently misbehaving. A trailing '%' ends the scan. Count or type
// inconsistency between directives and args IS an error, reported to the
// caller for escalation.
func renderTemplate(s Sink, template string, args []Value) error {
	next := 0
	for i := 0; i < len(template); i++ {
		ch := template[i]
		if ch != '%' {
			s.PutByte(ch)
			continue
		}
		i++
		if i >= len(template) {
			break
		}
		d := template[i]
		if d == '%' {
			s.PutByte('%')
			continue
		}
		if d != 'd' && d != 'x' && d != 'p' && d != 's' {
			s.PutByte('%')
			s.PutByte(d)
			continue
		}
		if next >= len(args) {
			return fmt.Errorf("no argument left for %%%c", d)
		}
		v := args[next]
		next++
		switch d {
		case 'd':
			if v.kind != VAL_INT {
				return fmt.Errorf("argument %d is not an integer for %%d", next)
			}
			putInt(s, v.num, 10)
		case 'x':
			if v.kind != VAL_INT && v.kind != VAL_HEX {
				return fmt.Errorf("argument %d is not an integer for %%x", next)
			}
			putInt(s, v.num, 16)
		case 'p':
			if v.kind != VAL_PTR {
				return fmt.Errorf("argument %d is not a pointer for %%p", next)
			}
			putPtr(s, v.ptr)
		case 's':
			switch v.kind {
			case VAL_STR:
				putString(s, v.str)
			case VAL_BYTES:
				putBytes(s, v.bts)
			default:
				return fmt.Errorf("argument %d is not a string for %%s", next)
			}
		}
	}
	if next != len(args) {
		return fmt.Errorf("%d argument(s) left unconsumed", len(args)-next)
	}
	return nil
}
