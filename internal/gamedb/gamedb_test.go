package gamedb

import (
	"reflect"
	"testing"
)

func TestLookup(t *testing.T) {
	fields, ok := Lookup("crash3")
	if !ok {
		t.Fatal("Lookup(crash3) not found")
	}
	if len(fields) != 3 {
		t.Errorf("got %d fields, expected 3", len(fields))
	}
	expected := Field{Name: "lives", Address: 0x80068F58, Size: 1, Label: "Lives"}
	if !reflect.DeepEqual(fields[0], expected) {
		t.Errorf("got field: %+v\nexpected field: %+v", fields[0], expected)
	}

	if _, ok := Lookup("spyro"); ok {
		t.Error("Lookup(spyro) expected not found")
	}
}

func TestLookupNormalizesID(t *testing.T) {
	if _, ok := Lookup(" Crash2 "); !ok {
		t.Error("Lookup with surrounding space and case expected to succeed")
	}
}

func TestIDsSorted(t *testing.T) {
	actual := IDs()
	expected := []string{"crash2", "crash3"}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("got ids: %v\nexpected ids: %v", actual, expected)
	}
}
