package dbg

import (
	"reflect"

	petname "github.com/dustinkirkland/golang-petname"
)

// This hands out readable names for arbitrary pointers. It flagrantly leaks
// memory, but the names are generated lazily, so that only matters if you are
// actually debugging. Mesh cells are anonymous heap objects linked every
// which way; "SolidHeron flipped with UsefulMoth" beats comparing hex
// addresses by a mile.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are assigned in order of demand, so we make them nondeterministic
	// as a reminder that the same name never refers to the same cell between
	// runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	// Absent neighbor links render as Ø so boundary cells read naturally.
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := title(petname.Adjective()) + title(petname.Name())
	memo[obj] = r
	return r
}

func title(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
