package tree

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Gobd/oasmodel/errors"
)

// MarshalJSON prints n as JSON, keeping object field order. An empty indent
// produces compact output.
func MarshalJSON(n *Node, indent string) ([]byte, error) {
	w := &jsonWriter{indent: indent}
	if err := w.write(n, 0); err != nil {
		return nil, err
	}
	if indent != "" {
		w.buf.WriteByte('\n')
	}
	return w.buf.Bytes(), nil
}

type jsonWriter struct {
	buf    bytes.Buffer
	indent string
}

func (w *jsonWriter) write(n *Node, depth int) error {
	switch n.Kind() {
	case Null:
		w.buf.WriteString("null")
	case Scalar:
		return w.scalar(n)
	case Array:
		items := n.Items()
		if len(items) == 0 {
			w.buf.WriteString("[]")
			return nil
		}
		w.buf.WriteByte('[')
		for i, item := range items {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			w.newline(depth + 1)
			if err := w.write(item, depth+1); err != nil {
				return err
			}
		}
		w.newline(depth)
		w.buf.WriteByte(']')
	case Object:
		fields := n.Fields()
		if len(fields) == 0 {
			w.buf.WriteString("{}")
			return nil
		}
		w.buf.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			w.newline(depth + 1)
			w.str(f.Key)
			w.buf.WriteByte(':')
			if w.indent != "" {
				w.buf.WriteByte(' ')
			}
			if err := w.write(f.Value, depth+1); err != nil {
				return err
			}
		}
		w.newline(depth)
		w.buf.WriteByte('}')
	}
	return nil
}

func (w *jsonWriter) newline(depth int) {
	if w.indent == "" {
		return
	}
	w.buf.WriteByte('\n')
	w.buf.WriteString(strings.Repeat(w.indent, depth))
}

func (w *jsonWriter) scalar(n *Node) error {
	v, _ := n.Scalar()
	switch t := v.(type) {
	case nil:
		w.buf.WriteString("null")
	case bool:
		w.buf.WriteString(strconv.FormatBool(t))
	case int:
		w.buf.WriteString(strconv.Itoa(t))
	case int64:
		w.buf.WriteString(strconv.FormatInt(t, 10))
	case uint64:
		w.buf.WriteString(strconv.FormatUint(t, 10))
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			w.buf.WriteString("null")
			return nil
		}
		w.buf.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
	case string:
		w.str(t)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "cannot print %T as json", v)
	}
	return nil
}

func (w *jsonWriter) str(s string) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	w.buf.Write(bytes.TrimRight(b.Bytes(), "\n"))
}
