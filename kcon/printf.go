package kcon

const (
	errMissingArg   = "%!(MISSING)"
	errWrongArgType = "%!(WRONGTYPE)"
)

// Printf is the legacy unstructured entry point. The directive set is a
// fixed compatibility surface and must stay byte-exact:
//
//	%d  next argument, signed decimal
//	%x  next argument, lowercase hexadecimal (no 0x)
//	%p  next argument (uintptr), address
//	%s  next argument (string or []byte), verbatim
//	%%  literal percent, consumes nothing
//
// Any other byte after '%' passes through verbatim together with the '%'; a
// trailing '%' ends the scan. Arguments are consumed strictly left to right,
// one per consuming directive. Supplying the right number of correctly typed
// arguments is the caller's job and is not checked up front: a directive
// with no argument left renders %!(MISSING), a mistyped one %!(WRONGTYPE),
// surplus arguments are ignored.
//
// An empty format is a fatal usage error and escalates to Panic before any
// lock is taken.
func (c *Console) Printf(format string, args ...any) {
	if len(format) == 0 {
		c.Panic("printf: empty format")
	}
	release := c.enter()
	defer release()

	next := 0
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			c.sink.PutByte(ch)
			continue
		}
		i++
		if i >= len(format) {
			break
		}
		d := format[i]
		switch d {
		case '%':
			c.sink.PutByte('%')
		case 'd', 'x':
			arg, ok := take(args, &next)
			if !ok {
				putString(c.sink, errMissingArg)
				continue
			}
			v, ok := toInt64(arg)
			if !ok {
				putString(c.sink, errWrongArgType)
				continue
			}
			if d == 'd' {
				putInt(c.sink, v, 10)
			} else {
				putInt(c.sink, v, 16)
			}
		case 'p':
			arg, ok := take(args, &next)
			if !ok {
				putString(c.sink, errMissingArg)
				continue
			}
			p, ok := arg.(uintptr)
			if !ok {
				putString(c.sink, errWrongArgType)
				continue
			}
			putPtr(c.sink, p)
		case 's':
			arg, ok := take(args, &next)
			if !ok {
				putString(c.sink, errMissingArg)
				continue
			}
			switch sv := arg.(type) {
			case string:
				putString(c.sink, sv)
			case []byte:
				putBytes(c.sink, sv)
			default:
				putString(c.sink, errWrongArgType)
			}
		default:
			c.sink.PutByte('%')
			c.sink.PutByte(d)
		}
	}
}

func take(args []any, next *int) (any, bool) {
	if *next >= len(args) {
		return nil, false
	}
	arg := args[*next]
	*next++
	return arg, true
}

// toInt64 coerces any built-in integer type. uint64 values above MaxInt64
// wrap, same as the native-varargs boundary this mirrors.
func toInt64(arg any) (int64, bool) {
	switch v := arg.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	default:
		return 0, false
	}
}
