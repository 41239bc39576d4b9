package settings

import (
	"fmt"
	"strconv"
)

// slot is one typed setting: a key, its documented default, and the
// encode/decode pair mapping the typed value to the raw stored string.
// Each key is bound to exactly one slot, declared in settings.go.
type slot[T comparable] struct {
	key    Key
	def    T
	encode func(T) string
	decode func(string) (T, error)
}

// get reads the effective value: absent or undecodable raw values
// resolve to the default, never to an error.
func (sl slot[T]) get(s *Settings) T {
	raw, ok := s.read(sl.key)
	if !ok {
		return sl.def
	}
	v, err := sl.decode(raw)
	if err != nil {
		return sl.def
	}
	return v
}

// set writes the value and publishes a change notification if and only
// if the effective value differs from what get would have returned
// before the write. Writing the current effective value, including when
// both old and new resolve to the default, is silent.
func (sl slot[T]) set(s *Settings, v T) {
	old := sl.get(s)
	s.write(sl.key, sl.encode(v))
	if old != v {
		s.bus.Publish(sl.key)
	}
}

func boolSlot(key Key, def bool) slot[bool] {
	return slot[bool]{
		key:    key,
		def:    def,
		encode: strconv.FormatBool,
		decode: strconv.ParseBool,
	}
}

func intSlot(key Key, def int) slot[int] {
	return slot[int]{
		key:    key,
		def:    def,
		encode: strconv.Itoa,
		decode: strconv.Atoi,
	}
}

// enumSlot persists enum values as their integer encoding; decoded
// integers that are not a known case count as undecodable.
func enumSlot[T ~int](key Key, def T, valid func(T) bool) slot[T] {
	return slot[T]{
		key: key,
		def: def,
		encode: func(v T) string {
			return strconv.Itoa(int(v))
		},
		decode: func(raw string) (T, error) {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return def, err
			}
			v := T(n)
			if !valid(v) {
				return def, fmt.Errorf("unknown %s value %d", key, n)
			}
			return v, nil
		},
	}
}
