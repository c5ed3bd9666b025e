package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// MapValues returns a fresh map value with every value replaced by f(value),
// keys preserved. The evaluator uses this to evaluate map literals.
func (v Value) MapValues(f func(Value) (Value, error)) (Value, error) {
	m := treemap.NewWithStringComparator()
	var ferr error
	v.MapEach(func(key string, val Value) {
		if ferr != nil {
			return
		}
		nv, err := f(val)
		if err != nil {
			ferr = err
			return
		}
		m.Put(key, nv)
	})
	if ferr != nil {
		return Nil, ferr
	}
	return Value{typ: MapType, Data: m}, nil
}
