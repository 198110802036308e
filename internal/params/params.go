package params

import (
	"iter"
	"slices"
)

// Params is an insertion-ordered mapping from option name to value.
// The zero value is not usable; call New.
type Params struct {
	keys   []string
	values map[string]Value
}

// New returns an empty parameter set.
func New() *Params {
	return &Params{values: make(map[string]Value)}
}

// With sets key and returns p, for building literals.
func (p *Params) With(key string, v Value) *Params {
	p.Set(key, v)
	return p
}

// Len returns the number of keys.
func (p *Params) Len() int { return len(p.keys) }

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string { return slices.Clone(p.keys) }

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Get returns the value for key.
func (p *Params) Get(key string) (Value, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set assigns key, keeping its position if it is already present.
func (p *Params) Set(key string, v Value) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

// Delete removes key if present.
func (p *Params) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
}

// Take returns the value for key and removes it. The boolean is false when
// key was absent.
func (p *Params) Take(key string) (Value, bool) {
	v, ok := p.values[key]
	if ok {
		p.Delete(key)
	}
	return v, ok
}

// All iterates over the entries in insertion order.
func (p *Params) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range p.keys {
			if !yield(k, p.values[k]) {
				return
			}
		}
	}
}

// Clone returns a copy of p that shares no list storage with it.
func (p *Params) Clone() *Params {
	c := New()
	for k, v := range p.All() {
		c.Set(k, v.clone())
	}
	return c
}

// ToMap converts p to a plain map of []string and bool values.
func (p *Params) ToMap() map[string]any {
	m := make(map[string]any, len(p.keys))
	for k, v := range p.All() {
		m[k] = v.Interface()
	}
	return m
}

// MergeInto assigns v to key when key is absent. Otherwise the values are
// concatenated, existing first when appendValues is set and v first when it
// is not. An empty list is a no-op.
func (p *Params) MergeInto(key string, v Value, appendValues bool) {
	if v.Empty() {
		return
	}
	cur, ok := p.values[key]
	if !ok {
		p.Set(key, v.clone())
		return
	}
	if appendValues {
		p.Set(key, cur.Concat(v))
	} else {
		p.Set(key, v.Concat(cur))
	}
}

// RenameKey moves the value of old onto new, merging it the way MergeInto
// does. It is a no-op when old is absent.
func (p *Params) RenameKey(old, new string, appendValues bool) {
	v, ok := p.Take(old)
	if !ok {
		return
	}
	p.MergeInto(new, v, appendValues)
}

// Combine unions a and b. Keys present in both get a's values followed by
// b's; other keys are copied through. Neither input is modified.
func Combine(a, b *Params) *Params {
	c := New()
	for k, v := range a.All() {
		if bv, ok := b.Get(k); ok {
			c.Set(k, v.Concat(bv))
			continue
		}
		c.Set(k, v.clone())
	}
	for k, v := range b.All() {
		if !a.Has(k) {
			c.Set(k, v.clone())
		}
	}
	return c
}
