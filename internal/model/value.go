package model

import (
	"bytes"
	"encoding/json"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/bytedance/sonic"
)

// jsonAPI matches the encoding package's configuration.
var jsonAPI = sonic.ConfigStd

// Value is a system-owned record field held as the raw JSON it was stored
// as, so a value taskr cannot interpret still round-trips unchanged.
type Value []byte

// Millis returns the Value taskr writes for a millisecond count.
func Millis(ms int64) Value {
	return strconv.AppendInt(nil, ms, 10)
}

// IsSet reports whether the field was stored with a non-null value.
func (v Value) IsSet() bool {
	b := bytes.TrimSpace(v)
	return len(b) > 0 && !bytes.Equal(b, []byte("null"))
}

// Int64 returns the value as a whole number. Fractions are rounded; strings,
// null and other JSON kinds report false.
func (v Value) Int64() (int64, bool) {
	s := string(bytes.TrimSpace(v))

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt64 {
		return 0, false
	}

	return int64(math.Round(f)), true
}

// Text renders the value for display: JSON strings unquoted, anything else
// as stored, "" when unset.
func (v Value) Text() string {
	if !v.IsSet() {
		return ""
	}

	s := string(bytes.TrimSpace(v))
	if s[0] == '"' {
		if unquoted, err := strconv.Unquote(s); err == nil {
			return unquoted
		}
	}

	return s
}

func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}

	return v, nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	*v = slices.Clone(data)
	return nil
}

// taskFields is Task without its JSON methods.
type taskFields Task

var knownKeys = []string{"id", "projectName", "taskDescription", "timestamp", "duration"}

// MarshalJSON writes the known fields in declaration order followed by
// Extra in key order.
func (t Task) MarshalJSON() ([]byte, error) {
	data, err := jsonAPI.Marshal(taskFields(t))
	if err != nil || len(t.Extra) == 0 {
		return data, err
	}

	var buf bytes.Buffer

	buf.Write(data[:len(data)-1])

	for _, k := range slices.Sorted(maps.Keys(t.Extra)) {
		if slices.Contains(knownKeys, k) {
			continue
		}

		key, err := jsonAPI.Marshal(k)
		if err != nil {
			return nil, err
		}

		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')

		if raw := t.Extra[k]; len(raw) > 0 {
			buf.Write(raw)
		} else {
			buf.WriteString("null")
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads the known fields and keeps every other key in Extra.
func (t *Task) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := jsonAPI.Unmarshal(data, &fields); err != nil {
		return err
	}

	var known taskFields
	if err := jsonAPI.Unmarshal(data, &known); err != nil {
		return err
	}

	known.Extra = nil

	for k, raw := range fields {
		if slices.Contains(knownKeys, k) {
			continue
		}

		if known.Extra == nil {
			known.Extra = make(map[string]json.RawMessage)
		}

		known.Extra[k] = slices.Clone(raw)
	}

	*t = Task(known)

	return nil
}
