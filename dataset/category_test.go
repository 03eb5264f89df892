package dataset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCategoryConfigFromMap(t *testing.T) {
	c, err := CategoryConfigFromMap(map[string]any{
		"label":            "Physicists",
		"starting_points":  []any{"List of physicists", "List of theoretical physicists"},
		"title_prefix":     "Physicist",
		"category_pattern": nil,
	})
	if err != nil {
		t.Fatalf("CategoryConfigFromMap: %v", err)
	}

	if c.Label() != "Physicists" {
		t.Errorf("Label: got %q", c.Label())
	}
	if diff := cmp.Diff([]string{"List of physicists", "List of theoretical physicists"}, c.StartingPoints()); diff != "" {
		t.Errorf("StartingPoints mismatch (-want +got):\n%s", diff)
	}
	if v, ok := c.TitlePrefix(); !ok || v != "Physicist" {
		t.Errorf("TitlePrefix: got (%q, %v)", v, ok)
	}
	if _, ok := c.CategoryPattern(); ok {
		t.Error("CategoryPattern: null should read as absent")
	}
	if _, ok := c.ExplicitCategory(); ok {
		t.Error("ExplicitCategory: omitted key should read as absent")
	}
}

func TestCategoryConfigFromMapErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		wantErr error
		wantKey string
	}{
		{
			name:    "missing label",
			input:   map[string]any{"starting_points": []any{}},
			wantErr: ErrMissingKey,
			wantKey: "label",
		},
		{
			name:    "missing starting points",
			input:   map[string]any{"label": "Rivers"},
			wantErr: ErrMissingKey,
			wantKey: "starting_points",
		},
		{
			name:    "unexpected key",
			input:   map[string]any{"label": "Rivers", "starting_points": []any{}, "weight": 3},
			wantErr: ErrUnexpectedKey,
			wantKey: "weight",
		},
		{
			name:    "label not a string",
			input:   map[string]any{"label": 4, "starting_points": []any{}},
			wantErr: ErrFieldType,
			wantKey: "label",
		},
		{
			name:    "starting point not a string",
			input:   map[string]any{"label": "Rivers", "starting_points": []any{"List of rivers", 2}},
			wantErr: ErrFieldType,
			wantKey: "starting_points",
		},
		{
			name:    "optional field not a string",
			input:   map[string]any{"label": "Rivers", "starting_points": []string{}, "explicit_category": true},
			wantErr: ErrFieldType,
			wantKey: "explicit_category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CategoryConfigFromMap(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error: got %v, want %v", err, tt.wantErr)
			}
			var keyErr *KeyError
			if !errors.As(err, &keyErr) {
				t.Fatalf("error %v is not a *KeyError", err)
			}
			if keyErr.Key != tt.wantKey {
				t.Errorf("key: got %q, want %q", keyErr.Key, tt.wantKey)
			}
		})
	}
}

func mustCategory(t *testing.T, m map[string]any) CategoryConfig {
	t.Helper()
	c, err := CategoryConfigFromMap(m)
	if err != nil {
		t.Fatalf("CategoryConfigFromMap: %v", err)
	}
	return c
}

func TestCategoryConfigEqualityByLabel(t *testing.T) {
	a := mustCategory(t, map[string]any{
		"label":           "Rivers",
		"starting_points": []any{"List of rivers of Europe"},
	})
	b := mustCategory(t, map[string]any{
		"label":             "Rivers",
		"starting_points":   []any{"List of rivers of Asia", "List of rivers of Africa"},
		"explicit_category": "Rivers of Asia",
	})
	c := mustCategory(t, map[string]any{
		"label":           "Lakes",
		"starting_points": []any{"List of rivers of Europe"},
	})

	if !a.Equal(b) || !b.Equal(a) {
		t.Error("configs with the same label should be equal")
	}
	if a.Key() != b.Key() {
		t.Errorf("keys differ for the same label: %q vs %q", a.Key(), b.Key())
	}
	if a.Equal(c) {
		t.Error("configs with different labels should not be equal")
	}

	byKey := map[string]CategoryConfig{a.Key(): a}
	if _, ok := byKey[b.Key()]; !ok {
		t.Error("b should find a's entry by key")
	}
}

func TestCategorySet(t *testing.T) {
	var set CategorySet

	rivers := mustCategory(t, map[string]any{"label": "Rivers", "starting_points": []any{"A"}})
	riversAgain := mustCategory(t, map[string]any{"label": "Rivers", "starting_points": []any{"B"}})
	lakes := mustCategory(t, map[string]any{"label": "Lakes", "starting_points": []any{"C"}})

	if !set.Add(rivers) {
		t.Error("first Add should report true")
	}
	if set.Add(riversAgain) {
		t.Error("Add with a duplicate label should report false")
	}
	if !set.Add(lakes) {
		t.Error("Add of a new label should report true")
	}

	if set.Len() != 2 {
		t.Errorf("Len: got %d, want 2", set.Len())
	}
	if !set.Contains(riversAgain) {
		t.Error("Contains should match on label")
	}
	got, ok := set.Get("Rivers")
	if !ok {
		t.Fatal("Get(Rivers) not found")
	}
	if diff := cmp.Diff([]string{"A"}, got.StartingPoints()); diff != "" {
		t.Errorf("first insert should win (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Rivers", "Lakes"}, set.Labels()); diff != "" {
		t.Errorf("Labels mismatch (-want +got):\n%s", diff)
	}
}
