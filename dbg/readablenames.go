package dbg

import (
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This turns pointers into readable names, which is much easier on the eyes
// than hex addresses when staring at a dump of hull links. Names are memoized
// forever, so the memo leaks, but only if debugging is actually in use.

var memo = map[interface{}]string{}

func init() {
	// Names are handed out in demand order, so make them nondeterministic as
	// a reminder that a name never refers to the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for obj within this process, or "Ø"
// for nil.
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if name, ok := memo[obj]; ok {
		return name
	}
	name := strings.Title(petname.Adjective()) + strings.Title(petname.Name())
	memo[obj] = name
	return name
}
