package sliceiterator

import (
	"reflect"
	"testing"
)

func TestIterator(t *testing.T) {
	data := []string{"prog", "--config", "x.json", "--flag"}
	i := New(&data)
	if i.Size() != len(data) {
		t.Errorf("wrong size: %d\n", i.Size())
	}
	if i.Index() != -1 {
		t.Errorf("wrong initial index: %d\n", i.Index())
	}
	if i.Value() != "" {
		t.Errorf("wrong value before first Next: %s\n", i.Value())
	}
	if !i.Next() {
		t.Errorf("wrong next return\n")
	}
	if i.Value() != "prog" {
		t.Errorf("wrong value: %s\n", i.Value())
	}
	if i.RemainingAfter() != 3 {
		t.Errorf("wrong remaining: %d\n", i.RemainingAfter())
	}
	for i.Next() {
		if i.Index() == 1 && i.Value() != "--config" {
			t.Errorf("wrong value: %s\n", i.Value())
		}
	}
	if i.Next() != false {
		t.Errorf("wrong next return\n")
	}
	if i.Value() != "" {
		t.Errorf("wrong value: %s\n", i.Value())
	}
	if i.RemainingAfter() != 0 {
		t.Errorf("wrong remaining: %d\n", i.RemainingAfter())
	}
	i.Reset()
	if i.Index() != -1 {
		t.Errorf("wrong index after reset: %d\n", i.Index())
	}
}

func TestTake(t *testing.T) {
	data := []string{"--env", "VAR1", "value1", "--flag"}
	i := New(&data)
	i.Next()
	if i.Value() != "--env" {
		t.Errorf("wrong value: %s\n", i.Value())
	}
	vals, ok := i.Take(2)
	if !ok {
		t.Fatalf("take failed\n")
	}
	if !reflect.DeepEqual(vals, []string{"VAR1", "value1"}) {
		t.Errorf("wrong values: %v\n", vals)
	}
	if i.Index() != 2 {
		t.Errorf("wrong index after take: %d\n", i.Index())
	}
	i.Next()
	if i.Value() != "--flag" {
		t.Errorf("wrong value: %s\n", i.Value())
	}

	// Nothing left: a non-zero take fails without advancing.
	if _, ok := i.Take(1); ok {
		t.Errorf("take should have failed\n")
	}
	if i.Index() != 3 {
		t.Errorf("index moved on failed take: %d\n", i.Index())
	}

	// Zero take always succeeds and consumes nothing.
	vals, ok = i.Take(0)
	if !ok || len(vals) != 0 {
		t.Errorf("wrong zero take: %v, %v\n", vals, ok)
	}
}

func TestTakeReturnsCopy(t *testing.T) {
	data := []string{"--config", "x.json"}
	i := New(&data)
	i.Next()
	vals, ok := i.Take(1)
	if !ok {
		t.Fatalf("take failed\n")
	}
	data[1] = "mutated"
	if vals[0] != "x.json" {
		t.Errorf("take does not copy: %v\n", vals)
	}
}
