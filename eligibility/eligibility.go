// Package eligibility decides which classes are measured.
package eligibility

import (
	"path/filepath"
	"strings"

	"github.com/TFMV/surrealhcc/types"
)

// Predicate reports whether a class should be measured.
type Predicate func(types.ClassUnit) bool

// All accepts every class with a name.
func All(u types.ClassUnit) bool {
	return u.QualifiedName != ""
}

// And accepts a class only when every predicate does.
func And(preds ...Predicate) Predicate {
	return func(u types.ClassUnit) bool {
		for _, p := range preds {
			if !p(u) {
				return false
			}
		}
		return true
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(u types.ClassUnit) bool {
		return !p(u)
	}
}

var testSuffixes = []string{"Test", "Tests", "IT", "TestCase"}

var testDirs = []string{"test", "tests", "androidTest", "testFixtures"}

// IsTest matches classes that live under a test source root or follow a
// test naming convention.
func IsTest(u types.ClassUnit) bool {
	name := u.SimpleName()
	for _, suffix := range testSuffixes {
		if strings.HasSuffix(name, suffix) && name != suffix {
			return true
		}
	}
	for _, part := range strings.Split(filepath.ToSlash(u.Path), "/") {
		for _, dir := range testDirs {
			if part == dir {
				return true
			}
		}
	}
	return false
}

// IsGenerated matches classes marked with a @Generated annotation.
func IsGenerated(u types.ClassUnit) bool {
	return u.HasAnnotation("Generated")
}

// Default excludes unnamed, test and generated classes.
func Default() Predicate {
	return And(All, Not(IsTest), Not(IsGenerated))
}

// WithTests is Default without the test exclusion.
func WithTests() Predicate {
	return And(All, Not(IsGenerated))
}
