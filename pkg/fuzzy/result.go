package fuzzy

import (
	"bytes"
	"encoding/json"
	"math"
)

// Entry is the degree of one set within a Result.
type Entry struct {
	Set    string  `json:"set" yaml:"set"`
	Degree float64 `json:"degree" yaml:"degree"`
}

// Result is the membership vector of a scalar across an ordered family of
// sets. Memberships follows the order the sets were supplied in.
type Result struct {
	Value       float64
	Memberships []Entry
}

// Degree returns the degree recorded for the named set.
func (r Result) Degree(name string) (float64, bool) {
	for _, e := range r.Memberships {
		if e.Set == name {
			return e.Degree, true
		}
	}
	return 0, false
}

// Names returns the set names in result order.
func (r Result) Names() []string {
	names := make([]string, len(r.Memberships))
	for i, e := range r.Memberships {
		names[i] = e.Set
	}
	return names
}

// MarshalJSON encodes memberships as an object whose keys keep result order:
//
//	{"value":25,"memberships":{"Young":0.72,"Adult":0,"Senior":0}}
//
// A NaN or infinite value is written as null.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"value":`)
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		buf.WriteString("null")
	} else {
		v, err := json.Marshal(r.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteString(`,"memberships":{`)
	for i, e := range r.Memberships {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Set)
		if err != nil {
			return nil, err
		}
		d, err := json.Marshal(e.Degree)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(d)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// MembershipVector evaluates value against every set in order. All sets are
// checked before any degree is computed; a nil or unconstructed set fails
// the whole call with an *InvalidSetError.
func MembershipVector(value float64, sets []*Set) (Result, error) {
	for _, s := range sets {
		if !s.valid() {
			name := ""
			if s != nil {
				name = s.name
			}
			return Result{}, invalid(name, ErrNilSet)
		}
	}
	return evaluate(value, sets), nil
}

func evaluate(value float64, sets []*Set) Result {
	r := Result{
		Value:       value,
		Memberships: make([]Entry, len(sets)),
	}
	for i, s := range sets {
		r.Memberships[i] = Entry{Set: s.name, Degree: s.Membership(value)}
	}
	return r
}
