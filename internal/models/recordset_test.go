package models

import (
	"encoding/json"
	"testing"
)

type holder struct {
	Items RecordSet[string] `json:"items"`
}

func TestRecordSetMarshal(t *testing.T) {
	tests := []struct {
		name string
		set  RecordSet[string]
		want string
	}{
		{"unpopulated marshals to null", RecordSet[string]{}, `{"items":null}`},
		{"populated empty marshals to []", PopulatedSet([]string{}), `{"items":[]}`},
		{"populated nil slice still marshals to []", PopulatedSet[string](nil), `{"items":[]}`},
		{"records marshal as a plain array", PopulatedSet([]string{"a", "b"}), `{"items":["a","b"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(holder{Items: tt.set})
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("got %s, want %s", data, tt.want)
			}
		})
	}
}

func TestRecordSetUnmarshal(t *testing.T) {
	tests := []struct {
		name          string
		doc           string
		wantPopulated bool
		wantLen       int
	}{
		{"null stays unpopulated", `{"items":null}`, false, 0},
		{"absent field stays unpopulated", `{}`, false, 0},
		{"empty array is populated", `{"items":[]}`, true, 0},
		{"records are populated", `{"items":["a"]}`, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h holder
			if err := json.Unmarshal([]byte(tt.doc), &h); err != nil {
				t.Fatal(err)
			}
			if h.Items.Populated() != tt.wantPopulated {
				t.Errorf("populated = %v, want %v", h.Items.Populated(), tt.wantPopulated)
			}
			if h.Items.Len() != tt.wantLen {
				t.Errorf("len = %d, want %d", h.Items.Len(), tt.wantLen)
			}
		})
	}
}

func TestRecordSetRoundTripPreservesState(t *testing.T) {
	// The populated/unpopulated distinction must survive a store-and-load
	// cycle, since the whole plan persists as one JSON document.
	for _, set := range []RecordSet[string]{{}, PopulatedSet([]string{}), PopulatedSet([]string{"x"})} {
		data, err := json.Marshal(holder{Items: set})
		if err != nil {
			t.Fatal(err)
		}
		var h holder
		if err := json.Unmarshal(data, &h); err != nil {
			t.Fatal(err)
		}
		if h.Items.Populated() != set.Populated() || h.Items.Len() != set.Len() {
			t.Errorf("round trip of %s changed state", data)
		}
	}
}
