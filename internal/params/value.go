package params

import "strings"

// Value is an option value: an ordered string list or a boolean switch.
type Value struct {
	items  []string
	flag   bool
	isFlag bool
}

// List returns a list value holding items.
func List(items ...string) Value {
	return Value{items: append([]string(nil), items...)}
}

// Flag returns a switch value.
func Flag(on bool) Value {
	return Value{flag: on, isFlag: true}
}

// IsFlag reports whether v is a switch.
func (v Value) IsFlag() bool { return v.isFlag }

// Strings returns a copy of the list items. Switches have none.
func (v Value) Strings() []string {
	return append([]string(nil), v.items...)
}

// First returns the first list item, or "" if there is none.
func (v Value) First() string {
	if len(v.items) == 0 {
		return ""
	}
	return v.items[0]
}

// Bool reports the switch state. A list is true when it is non-empty.
func (v Value) Bool() bool {
	if v.isFlag {
		return v.flag
	}
	return len(v.items) > 0
}

// Empty reports whether v is a list with no items.
func (v Value) Empty() bool {
	return !v.isFlag && len(v.items) == 0
}

// Concat returns v followed by o. Two switches combine with a logical OR;
// concatenating a list with a switch keeps the list.
func (v Value) Concat(o Value) Value {
	switch {
	case v.isFlag && o.isFlag:
		return Flag(v.flag || o.flag)
	case v.isFlag:
		return o.clone()
	case o.isFlag:
		return v.clone()
	}
	items := make([]string, 0, len(v.items)+len(o.items))
	items = append(items, v.items...)
	items = append(items, o.items...)
	return Value{items: items}
}

// Interface returns the value as []string or bool, for serialization.
func (v Value) Interface() any {
	if v.isFlag {
		return v.flag
	}
	items := make([]string, len(v.items))
	copy(items, v.items)
	return items
}

// String renders lists space-separated and switches as true/false.
func (v Value) String() string {
	if v.isFlag {
		if v.flag {
			return "true"
		}
		return "false"
	}
	return strings.Join(v.items, " ")
}

func (v Value) clone() Value {
	if v.isFlag {
		return v
	}
	return List(v.items...)
}
