package curate

import (
	"reflect"
	"testing"
)

func TestPartition(t *testing.T) {
	scored := []WordScore{
		{Word: "APPLE", Freq: 5.32},
		{Word: "ZYZZX", Freq: 0.00},
		{Word: "BERRY", Freq: 4.10},
		{Word: "EXACT", Freq: 3.40},
	}

	kept, dropped := Partition(scored, 3.4)

	// kept and dropped must form an exact partition in source order.
	if len(kept)+len(dropped) != len(scored) {
		t.Fatalf("partition sizes %d+%d do not cover %d entries", len(kept), len(dropped), len(scored))
	}

	expectedKept := []WordScore{
		{Word: "APPLE", Freq: 5.32},
		{Word: "BERRY", Freq: 4.10},
		{Word: "EXACT", Freq: 3.40},
	}
	if !reflect.DeepEqual(kept, expectedKept) {
		t.Errorf("kept = %v, expected %v", kept, expectedKept)
	}

	expectedDropped := []WordScore{{Word: "ZYZZX", Freq: 0.00}}
	if !reflect.DeepEqual(dropped, expectedDropped) {
		t.Errorf("dropped = %v, expected %v", dropped, expectedDropped)
	}
}

// A word scoring exactly at the threshold stays in the answer list.
func TestPartitionBoundaryIsKept(t *testing.T) {
	kept, dropped := Partition([]WordScore{{Word: "EDGE", Freq: 3.4}}, 3.4)
	if len(kept) != 1 || len(dropped) != 0 {
		t.Errorf("boundary word must be kept: kept=%v dropped=%v", kept, dropped)
	}
}

func TestPartitionInvariants(t *testing.T) {
	scored := []WordScore{
		{Word: "A", Freq: 1.0},
		{Word: "B", Freq: 2.0},
		{Word: "C", Freq: 3.0},
		{Word: "D", Freq: 4.0},
	}
	kept, dropped := Partition(scored, 2.5)

	for _, item := range kept {
		if item.Freq < 2.5 {
			t.Errorf("kept entry %v scores below threshold", item)
		}
	}
	for _, item := range dropped {
		if item.Freq >= 2.5 {
			t.Errorf("dropped entry %v scores at or above threshold", item)
		}
	}
}

func TestAllowedGuessesUnsetKeepsEverything(t *testing.T) {
	// An unset threshold is a true no-op: even entries with scores no real
	// cutoff could pass must survive untouched.
	scored := []WordScore{
		{Word: "APPLE", Freq: 5.32},
		{Word: "ZYZZX", Freq: 0.00},
		{Word: "WEIRD", Freq: -100},
	}

	allowed := AllowedGuesses(scored, nil)

	if !reflect.DeepEqual(allowed, scored) {
		t.Errorf("allowed = %v, expected the full scored set", allowed)
	}

	// It must be an independent copy, not an alias of the input.
	allowed[0].Word = "MUTATED"
	if scored[0].Word != "APPLE" {
		t.Error("AllowedGuesses must not alias the input slice")
	}
}

func TestAllowedGuessesWithThreshold(t *testing.T) {
	scored := []WordScore{
		{Word: "APPLE", Freq: 5.32},
		{Word: "BERRY", Freq: 4.10},
		{Word: "ZYZZX", Freq: 0.00},
	}
	threshold := 4.0

	allowed := AllowedGuesses(scored, &threshold)

	expected := []WordScore{
		{Word: "APPLE", Freq: 5.32},
		{Word: "BERRY", Freq: 4.10},
	}
	if !reflect.DeepEqual(allowed, expected) {
		t.Errorf("allowed = %v, expected %v", allowed, expected)
	}
}

// The allowed list filters the full scored set, not the kept partition:
// a guesses threshold below the answer threshold readmits dropped words.
func TestAllowedGuessesIndependentOfPartition(t *testing.T) {
	scored := []WordScore{
		{Word: "APPLE", Freq: 5.32},
		{Word: "RAREISH", Freq: 2.00},
	}

	kept, _ := Partition(scored, 3.4)
	if len(kept) != 1 {
		t.Fatalf("expected 1 kept entry, got %d", len(kept))
	}

	threshold := 1.0
	allowed := AllowedGuesses(scored, &threshold)
	if len(allowed) != 2 {
		t.Errorf("allowed must include words excluded from the answer list, got %v", allowed)
	}
}
