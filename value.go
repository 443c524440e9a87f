package coax

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"
)

// Kind discriminates the variants of a decoded input Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindTime
	// KindInvalid marks a value outside the decoded-tree vocabulary, e.g. an
	// arbitrary struct handed in programmatically. Shape checks reject it.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindTime:
		return "timestamp"
	default:
		return "invalid"
	}
}

// Value is a tagged variant over the decoded input tree. Exactly one of the
// per-kind fields is meaningful, selected by Kind. Numbers keep their lexeme
// as json.Number so the leaf strategy decides integer vs float interpretation.
type Value struct {
	Kind Kind
	Bool bool
	Num  json.Number
	Str  string
	Arr  []Value
	Obj  map[string]Value
	Time time.Time
	raw  any // original value for KindInvalid diagnostics
}

// ValueOf normalizes a decoded tree into the Value variant. It accepts the
// shapes produced by JSON and YAML decoders (map[string]any, map[any]any,
// []any, json.Number, float64, ints, bool, string, nil) plus time.Time for
// timestamps handed in programmatically.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{Kind: KindNull}
	case Value:
		return t
	case bool:
		return Value{Kind: KindBool, Bool: t}
	case string:
		return Value{Kind: KindString, Str: t}
	case json.Number:
		return Value{Kind: KindNumber, Num: t}
	case float64:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatFloat(t, 'g', -1, 64))}
	case float32:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatFloat(float64(t), 'g', -1, 32))}
	case int:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatInt(int64(t), 10))}
	case int8:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatInt(int64(t), 10))}
	case int16:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatInt(int64(t), 10))}
	case int32:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatInt(int64(t), 10))}
	case int64:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatInt(t, 10))}
	case uint:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatUint(uint64(t), 10))}
	case uint8:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatUint(uint64(t), 10))}
	case uint16:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatUint(uint64(t), 10))}
	case uint32:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatUint(uint64(t), 10))}
	case uint64:
		return Value{Kind: KindNumber, Num: json.Number(strconv.FormatUint(t, 10))}
	case time.Time:
		return Value{Kind: KindTime, Time: t}
	case []any:
		arr := make([]Value, len(t))
		for i := range t {
			arr[i] = ValueOf(t[i])
		}
		return Value{Kind: KindArray, Arr: arr}
	case []Value:
		return Value{Kind: KindArray, Arr: t}
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, vv := range t {
			obj[k] = ValueOf(vv)
		}
		return Value{Kind: KindObject, Obj: obj}
	case map[any]any:
		// YAML decoders may produce any-keyed mappings; non-string keys are
		// dropped the same way the YAML intake normalizes them.
		obj := make(map[string]Value, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			obj[ks] = ValueOf(vv)
		}
		return Value{Kind: KindObject, Obj: obj}
	default:
		return Value{Kind: KindInvalid, raw: v}
	}
}

// Interface reconstructs a plain Go representation of the value, used when an
// Issue reports the offending input.
func (v Value) Interface() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Num
	case KindString:
		return v.Str
	case KindArray:
		arr := make([]any, len(v.Arr))
		for i := range v.Arr {
			arr[i] = v.Arr[i].Interface()
		}
		return arr
	case KindObject:
		obj := make(map[string]any, len(v.Obj))
		for k, vv := range v.Obj {
			obj[k] = vv.Interface()
		}
		return obj
	case KindTime:
		return v.Time
	default:
		return v.raw
	}
}

// Input distinguishes an absent mapping entry from a present value, including
// a present explicit null.
type Input struct {
	Value   Value
	Present bool
}

// Present wraps a raw decoded value as present input.
func Present(raw any) Input { return Input{Value: ValueOf(raw), Present: true} }

// PresentValue wraps an already-normalized Value as present input.
func PresentValue(v Value) Input { return Input{Value: v, Present: true} }

// Absent denotes a missing mapping entry.
func Absent() Input { return Input{} }

// sortedKeys returns object keys in ascending order for deterministic
// iteration.
func sortedKeys(obj map[string]Value) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
