package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// JSON 不支持 Inf/NaN，非有限值编码为 null，解码为 NaN

// Float is a float64 that encodes non-finite values as null.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	return appendFloat(nil, float64(f)), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*f = Float(math.NaN())
		return nil
	}
	*f = Float(*v)
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 16+len(f.Vals)*8)
	b = append(b, `{"dim":`...)
	b = strconv.AppendInt(b, int64(f.Dim), 10)
	b = append(b, `,"vals":[`...)
	for i, v := range f.Vals {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendFloat(b, v)
	}
	b = append(b, "]}"...)
	return b, nil
}

func (f *Field) UnmarshalJSON(data []byte) error {
	var raw struct {
		Dim  int        `json:"dim"`
		Vals []*float64 `json:"vals"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Dim < 0 || raw.Dim > len(raw.Vals) || raw.Dim*raw.Dim != len(raw.Vals) {
		return fmt.Errorf("field: %d values for dim %d", len(raw.Vals), raw.Dim)
	}
	f.Dim = raw.Dim
	f.Vals = make([]float64, len(raw.Vals))
	for i, v := range raw.Vals {
		if v == nil {
			f.Vals[i] = math.NaN()
			continue
		}
		f.Vals[i] = *v
	}
	return nil
}

func appendFloat(b []byte, v float64) []byte {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return append(b, "null"...)
	}
	return strconv.AppendFloat(b, v, 'g', -1, 64)
}
