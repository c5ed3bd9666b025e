package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/gomal"
)

// Maps are backed by an ordered tree map, keyed by the internal text of a
// string or keyword. Ordering buys deterministic printing; insertion order
// is irrelevant by contract.

// NewMap returns an empty map value.
func NewMap() Value {
	return Value{typ: MapType, Data: treemap.NewWithStringComparator()}
}

// MakeMap builds a map value from a flat key/value sequence, as produced by
// the reader for a {…} literal or by a builtin. An odd element count or a
// key that is neither a string nor a keyword is an unrecoverable error.
func MakeMap(items []Value) (Value, error) {
	if len(items)%2 != 0 {
		return Nil, gomal.Errorf("map literal has odd length: missing value")
	}
	m := treemap.NewWithStringComparator()
	for i := 0; i < len(items); i += 2 {
		key, ok := items[i].MapKey()
		if !ok {
			return Nil, gomal.Errorf("map key not valid: %s", Print(items[i]))
		}
		m.Put(key, items[i+1])
	}
	return Value{typ: MapType, Data: m}, nil
}

// MapGet looks up a key (internal text) in a map value.
func (v Value) MapGet(key string) (Value, bool) {
	if v.typ != MapType {
		return Nil, false
	}
	if val, found := v.Data.(*treemap.Map).Get(key); found {
		return val.(Value), true
	}
	return Nil, false
}

// MapLen returns the number of entries of a map value.
func (v Value) MapLen() int {
	if v.typ != MapType {
		return 0
	}
	return v.Data.(*treemap.Map).Size()
}

// MapEach walks the entries of a map value in key order.
func (v Value) MapEach(f func(key string, val Value)) {
	if v.typ != MapType {
		return
	}
	v.Data.(*treemap.Map).Each(func(key interface{}, val interface{}) {
		f(key.(string), val.(Value))
	})
}

// MapPut returns a copy of the map value with one entry replaced. The
// receiver is left untouched; map values are immutable like all collections.
func (v Value) MapPut(key string, val Value) Value {
	m := treemap.NewWithStringComparator()
	v.MapEach(func(k string, old Value) {
		m.Put(k, old)
	})
	m.Put(key, val)
	return Value{typ: MapType, Data: m}
}
