package roster

import (
	"reflect"
	"strings"
	"testing"
)

func TestFilterMatchesNameOrRollCaseInsensitive(t *testing.T) {
	recs := sampleRecords()
	got := Filter(recs, "r1")
	if len(got) != 1 || got[0].Name != "Ann" {
		t.Fatalf("expected [Ann], got %#v", got)
	}
	got = Filter(recs, "BO")
	if len(got) != 1 || got[0].Name != "Bob" {
		t.Fatalf("expected [Bob], got %#v", got)
	}
}

func TestFilterEmptyTermReturnsAllInOrder(t *testing.T) {
	recs := sampleRecords()
	if got := Filter(recs, ""); !reflect.DeepEqual(got, recs) {
		t.Fatalf("expected all records, got %#v", got)
	}
}

func TestFilterIgnoresPhoneAndAddress(t *testing.T) {
	recs := sampleRecords()
	if got := Filter(recs, "555"); len(got) != 0 {
		t.Fatalf("expected phone to be ignored, got %#v", got)
	}
	if got := Filter(recs, "main"); len(got) != 0 {
		t.Fatalf("expected address to be ignored, got %#v", got)
	}
}

func TestFilterDoesNotTrimTerm(t *testing.T) {
	recs := []Record{{ID: "1", Name: "Ann Lee", RollNo: "R1"}}
	if got := Filter(recs, "n l"); len(got) != 1 {
		t.Fatalf("expected inner space match, got %#v", got)
	}
	if got := Filter(recs, " ann"); len(got) != 0 {
		t.Fatalf("expected leading space to be significant, got %#v", got)
	}
}

func TestComputeStats(t *testing.T) {
	recs := []Record{
		{ID: "1", Name: "Ann", PhoneNo: "555", Address: "1 Main St"},
		{ID: "2", Name: "Bob", PhoneNo: "", Address: "2 Main St"},
		{ID: "3", Name: "Cy"},
	}
	got := ComputeStats(recs)
	want := Stats{Total: 3, WithPhone: 1, WithAddress: 2}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestFilterAgreesWithSubstringRule(t *testing.T) {
	recs := []Record{
		{ID: "1", Name: "Ann Lee", RollNo: "R1", PhoneNo: "555"},
		{ID: "2", Name: "Bob", RollNo: "CS-102", Address: "Ann St"},
		{ID: "3", Name: "ÉMILE", RollNo: "r10"},
		{ID: "4", Name: "", RollNo: ""},
		{ID: "5", Name: "annabel", RollNo: "X9"},
	}
	terms := []string{"", "a", "ANN", "n l", " ", "r1", "R10", "cs-", "102", "émile", "555", "st", "zz", "9"}
	for _, term := range terms {
		var want []Record
		for _, rec := range recs {
			name, roll, q := strings.ToLower(rec.Name), strings.ToLower(rec.RollNo), strings.ToLower(term)
			if strings.Contains(name, q) || strings.Contains(roll, q) {
				want = append(want, rec)
			}
		}
		got := Filter(recs, term)
		if len(got) != len(want) {
			t.Fatalf("term %q: expected %d matches, got %d (%#v)", term, len(want), len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("term %q: expected %#v at %d, got %#v", term, want[i], i, got[i])
			}
		}
	}
	if len(Filter(recs, "a")) != 2 {
		t.Fatalf("expected two records matching %q", "a")
	}
}
