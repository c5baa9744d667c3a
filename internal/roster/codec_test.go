package roster

import (
	"reflect"
	"strings"
	"testing"
)

func TestMarshalRoundTrip(t *testing.T) {
	recs := sampleRecords()
	data, err := Marshal(recs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, recs) {
		t.Fatalf("expected round trip to preserve records, got %#v", got)
	}
}

func TestMarshalUsesSlotFieldNames(t *testing.T) {
	data, err := Marshal([]Record{{ID: "1", Name: "Ann", RollNo: "R1", PhoneNo: "555", Address: "x"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"id"`, `"name"`, `"rollNo"`, `"phoneNo"`, `"address"`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("expected %s in %s", key, data)
		}
	}
}

func TestMarshalEmptyIsArray(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected [], got %s", data)
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed data")
	}
	if _, err := Unmarshal([]byte(`{"id":"1"}`)); err == nil {
		t.Fatal("expected error for object instead of array")
	}
}
