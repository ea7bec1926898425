package functional_test

import (
	"testing"

	. "github.com/yusing/go-netwatch/internal/utils/functional"
	. "github.com/yusing/go-netwatch/internal/utils/testing"
)

func TestSetAddRemove(t *testing.T) {
	s := NewSet[string]()
	s.Add("a")
	s.Add("b")
	ExpectEqual(t, s.Size(), 2)
	ExpectTrue(t, s.Contains("a"))
	ExpectTrue(t, s.Contains("b"))

	s.Remove("a")
	ExpectFalse(t, s.Contains("a"))
	ExpectEqual(t, s.Size(), 1)

	s.Clear()
	ExpectEqual(t, s.Size(), 0)
}

func TestSetRange(t *testing.T) {
	s := NewSet[int]()
	for i := range 5 {
		s.Add(i)
	}
	sum := 0
	s.RangeAll(func(v int) {
		sum += v
	})
	ExpectEqual(t, sum, 10)

	visited := 0
	s.Range(func(int) bool {
		visited++
		return false
	})
	ExpectEqual(t, visited, 1)
}
