// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/hashstructure/v2"
)

// Variant tags mixed into container hashes so that, e.g., Some(1) and Ok(1)
// or Ok(x) and Err(x) do not collide by construction.
const (
	tagNone uint64 = iota + 1
	tagSome
	tagOk
	tagErr
	tagValid
	tagInvalid
)

// exportAll lets go-cmp descend into unexported fields, so payloads such as
// errors.New values compare structurally instead of panicking.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// equalValues reports structural equality of two payloads.
// Containers nested inside payloads compare through their Equal methods.
func equalValues[T any](a, b T) bool {
	return cmp.Equal(a, b, exportAll)
}

// containsValue reports whether xs holds an element structurally equal to x.
func containsValue[T any](xs []T, x T) bool {
	for _, y := range xs {
		if equalValues(x, y) {
			return true
		}
	}
	return false
}

// hashValue hashes a payload. Containers nested inside payloads hash through
// their Hash methods (hashstructure.Hashable).
//
// A payload that reaches a value with its own Equal method, such as
// time.Time, hashes to zero: go-cmp compares such values through Equal,
// which may be looser than their fields.
func hashValue(v any) (uint64, error) {
	if customEqual(reflect.ValueOf(v), map[uintptr]struct{}{}) {
		return 0, nil
	}
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}

var hashableType = reflect.TypeFor[hashstructure.Hashable]()

// hasEqualMethod reports whether t has a method of the form
// (T) Equal(I) bool with T assignable to I, as go-cmp looks for.
func hasEqualMethod(t reflect.Type) bool {
	m, ok := t.MethodByName("Equal")
	if !ok {
		return false
	}
	mt := m.Type
	return mt.NumIn() == 2 && mt.NumOut() == 1 &&
		mt.Out(0).Kind() == reflect.Bool && t.AssignableTo(mt.In(1))
}

// customEqual reports whether go-cmp would compare some value reachable from
// v through an Equal method that hashstructure does not see.
func customEqual(v reflect.Value, seen map[uintptr]struct{}) bool {
	if !v.IsValid() {
		return false
	}
	t := v.Type()
	if t.Kind() != reflect.Interface {
		if t.Implements(hashableType) {
			return false
		}
		if hasEqualMethod(t) {
			return true
		}
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return false
		}
		return customEqual(v.Elem(), seen)
	case reflect.Pointer:
		if v.IsNil() {
			return false
		}
		p := v.Pointer()
		if _, ok := seen[p]; ok {
			return false
		}
		seen[p] = struct{}{}
		return customEqual(v.Elem(), seen)
	case reflect.Struct:
		for i := range v.NumField() {
			if customEqual(v.Field(i), seen) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			if customEqual(v.Index(i), seen) {
				return true
			}
		}
	case reflect.Map:
		it := v.MapRange()
		for it.Next() {
			if customEqual(it.Key(), seen) || customEqual(it.Value(), seen) {
				return true
			}
		}
	}
	return false
}

// hashTagged mixes a variant tag with the payload hash.
func hashTagged(tag uint64, payload any) (uint64, error) {
	h, err := hashValue(payload)
	if err != nil {
		return 0, err
	}
	return hashValue([2]uint64{tag, h})
}

// hashSet hashes xs independently of order and multiplicity, then mixes in
// the length. Two slices that contain each other and have the same length
// therefore hash alike.
func hashSet[T any](tag uint64, xs []T) (uint64, error) {
	seen := make(map[uint64]struct{}, len(xs))
	var acc uint64
	for _, x := range xs {
		h, err := hashValue(x)
		if err != nil {
			return 0, err
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		acc ^= h
	}
	return hashValue([3]uint64{tag, uint64(len(xs)), acc})
}
