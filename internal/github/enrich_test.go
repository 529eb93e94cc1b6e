package github

import (
	"reflect"
	"testing"
)

func TestMergeLanguages(t *testing.T) {
	stats := LanguageStats{
		Languages:  map[string]int{"Go": 8000, "Shell": 1500, "Makefile": 500},
		TotalBytes: 10000,
	}
	// Makefile holds 5% exactly and stays; ordering is by bytes descending.
	got := MergeLanguages([]string{"Python", "Go"}, stats)
	want := []string{"Go", "Shell", "Makefile", "Python"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeLanguages = %v, want %v", got, want)
	}
}

func TestMergeLanguages_InsignificantDropped(t *testing.T) {
	stats := LanguageStats{
		Languages:  map[string]int{"Go": 9900, "HTML": 100},
		TotalBytes: 10000,
	}
	got := MergeLanguages(nil, stats)
	want := []string{"Go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeLanguages = %v, want %v", got, want)
	}
}

func TestMergeLanguages_EmptyRemote(t *testing.T) {
	local := []string{"Python", "TypeScript"}
	got := MergeLanguages(local, LanguageStats{Languages: map[string]int{}})
	if !reflect.DeepEqual(got, local) {
		t.Errorf("empty remote should pass local through, got %v", got)
	}
}

func TestMergeLanguages_Cap(t *testing.T) {
	langs := map[string]int{}
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		langs[name] = 1000
	}
	stats := LanguageStats{Languages: langs, TotalBytes: 8000}
	got := MergeLanguages([]string{"X", "Y", "Z", "W"}, stats)
	if len(got) != 10 {
		t.Errorf("merged list should cap at 10, got %d: %v", len(got), got)
	}
}
