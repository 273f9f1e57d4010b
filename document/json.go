package document

import (
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
)

var (
	compactJSON  = jsoniter.ConfigCompatibleWithStandardLibrary
	indentedJSON = jsoniter.Config{
		EscapeHTML:    true,
		SortMapKeys:   false,
		IndentionStep: 2,
	}.Froze()
)

// EncodeJSON writes v to w. Object members keep their insertion order.
func EncodeJSON(w io.Writer, v *Value, indent bool) error {
	cfg := compactJSON
	if indent {
		cfg = indentedJSON
	}
	stream := jsoniter.NewStream(cfg, w, 512)
	writeJSON(stream, v)
	if indent {
		stream.WriteRaw("\n")
	}
	if stream.Error != nil {
		return errors.Wrap(stream.Error, "encode json")
	}
	return errors.Wrap(stream.Flush(), "flush json")
}

func writeJSON(s *jsoniter.Stream, v *Value) {
	switch v.kind {
	case Null:
		s.WriteNil()
	case String:
		s.WriteString(v.str)
	case Bool:
		s.WriteBool(v.num != 0)
	case Int:
		s.WriteInt64(int64(v.num))
	case Uint:
		s.WriteUint64(v.num)
	case Float:
		f := math.Float64frombits(v.num)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			s.WriteNil()
			return
		}
		s.WriteFloat64(f)
	case Object:
		if len(v.members) == 0 {
			s.WriteEmptyObject()
			return
		}
		s.WriteObjectStart()
		for i := range v.members {
			if i > 0 {
				s.WriteMore()
			}
			s.WriteObjectField(v.members[i].Key)
			writeJSON(s, &v.members[i].Value)
		}
		s.WriteObjectEnd()
	case Array:
		if len(v.items) == 0 {
			s.WriteEmptyArray()
			return
		}
		s.WriteArrayStart()
		for i := range v.items {
			if i > 0 {
				s.WriteMore()
			}
			writeJSON(s, &v.items[i])
		}
		s.WriteArrayEnd()
	}
}

// MarshalJSON implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, v, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the compact JSON form of v.
func (v *Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return "<invalid: " + err.Error() + ">"
	}
	return string(b)
}

// ParseJSON decodes a JSON text into a Value, preserving member order.
// Integral numbers become Int or Uint values; others become Float.
func ParseJSON(data []byte) (Value, error) {
	iter := jsoniter.ParseBytes(compactJSON, data)
	var v Value
	readJSON(iter, &v)
	if iter.Error != nil && iter.Error != io.EOF {
		return Value{}, errors.Wrap(iter.Error, "parse json")
	}
	return v, nil
}

func readJSON(iter *jsoniter.Iterator, v *Value) {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		v.SetNull()
	case jsoniter.StringValue:
		v.SetString(iter.ReadString())
	case jsoniter.BoolValue:
		v.SetBool(iter.ReadBool())
	case jsoniter.NumberValue:
		readNumber(iter, v)
	case jsoniter.ObjectValue:
		v.SetObject()
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			var member Value
			readJSON(iter, &member)
			v.AddMember(key, member)
			return iter.Error == nil
		})
	case jsoniter.ArrayValue:
		v.SetArray()
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			var item Value
			readJSON(iter, &item)
			v.PushBack(item)
			return iter.Error == nil
		})
	default:
		iter.ReportError("readJSON", "unexpected token")
	}
}

func readNumber(iter *jsoniter.Iterator, v *Value) {
	n := string(iter.ReadNumber())
	if i, err := strconv.ParseInt(n, 10, 64); err == nil {
		v.SetInt(i)
		return
	}
	if u, err := strconv.ParseUint(n, 10, 64); err == nil {
		v.SetUint(u)
		return
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		iter.ReportError("readNumber", err.Error())
		return
	}
	v.SetFloat(f)
}
