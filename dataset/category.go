package dataset

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Category config keys.
const (
	keyLabel            = "label"
	keyStartingPoints   = "starting_points"
	keyCategoryPattern  = "category_pattern"
	keyExplicitCategory = "explicit_category"
	keyTitlePrefix      = "title_prefix"
)

var categoryKeys = map[string]struct{}{
	keyLabel:            {},
	keyStartingPoints:   {},
	keyCategoryPattern:  {},
	keyExplicitCategory: {},
	keyTitlePrefix:      {},
}

// CategoryConfig describes one category of the synthetic dataset.
//
// Label is the category title. StartingPoints are the Wikipedia (list)
// articles sampling starts from. CategoryPattern, ExplicitCategory and
// TitlePrefix help match scraped articles to the category.
//
// Identity is the label alone: Equal and Key ignore every other field.
type CategoryConfig struct {
	label            string
	startingPoints   []string
	categoryPattern  *string
	explicitCategory *string
	titlePrefix      *string
}

// CategoryConfigFromMap builds a CategoryConfig from a decoded mapping.
// label and starting_points are required; the three optional keys may be
// absent or null. Any other key is rejected.
func CategoryConfigFromMap(m map[string]any) (CategoryConfig, error) {
	for _, k := range sortedKeys(m) {
		if _, ok := categoryKeys[k]; !ok {
			return CategoryConfig{}, &KeyError{Record: "CategoryConfig", Key: k, Err: ErrUnexpectedKey}
		}
	}
	for _, k := range []string{keyLabel, keyStartingPoints} {
		if _, ok := m[k]; !ok {
			return CategoryConfig{}, &KeyError{Record: "CategoryConfig", Key: k, Err: ErrMissingKey}
		}
	}

	var c CategoryConfig

	label, ok := m[keyLabel].(string)
	if !ok {
		return CategoryConfig{}, categoryTypeError(keyLabel, "string", m[keyLabel])
	}
	c.label = label

	points, err := stringList(m[keyStartingPoints])
	if err != nil {
		return CategoryConfig{}, categoryTypeError(keyStartingPoints, "list of strings", m[keyStartingPoints])
	}
	c.startingPoints = points

	optional := []struct {
		key string
		dst **string
	}{
		{keyCategoryPattern, &c.categoryPattern},
		{keyExplicitCategory, &c.explicitCategory},
		{keyTitlePrefix, &c.titlePrefix},
	}
	for _, o := range optional {
		key, dst := o.key, o.dst
		v, present := m[key]
		if !present || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return CategoryConfig{}, categoryTypeError(key, "string or null", v)
		}
		*dst = &s
	}

	return c, nil
}

func categoryTypeError(key, want string, got any) error {
	return &KeyError{
		Record: "CategoryConfig",
		Key:    key,
		Err:    ErrFieldType,
		Detail: fmt.Sprintf("want %s, got %T", want, got),
	}
}

// stringList accepts []string or a decoded []any whose elements are all strings.
func stringList(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return slices.Clone(list), nil
	case []any:
		out := make([]string, 0, len(list))
		for i, e := range list {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T", i, e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("not a list: %T", v)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c CategoryConfig) Label() string { return c.label }

// StartingPoints returns a copy of the starting point article titles.
func (c CategoryConfig) StartingPoints() []string { return slices.Clone(c.startingPoints) }

func (c CategoryConfig) CategoryPattern() (string, bool) { return deref(c.categoryPattern) }
func (c CategoryConfig) ExplicitCategory() (string, bool) { return deref(c.explicitCategory) }
func (c CategoryConfig) TitlePrefix() (string, bool) { return deref(c.titlePrefix) }

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

// Equal reports whether c and other have the same label.
func (c CategoryConfig) Equal(other CategoryConfig) bool {
	return c.label == other.label
}

// Key is the hash key of the config: its label.
func (c CategoryConfig) Key() string { return c.label }

func (c CategoryConfig) String() string {
	return fmt.Sprintf("CategoryConfig(label=%q, starting_points=[%s])",
		c.label, strings.Join(c.startingPoints, ", "))
}

// CategorySet holds category configs keyed by label. The zero value is
// ready to use.
type CategorySet struct {
	byKey map[string]CategoryConfig
	order []string
}

// Add inserts c unless a config with an equal label is already present.
// It reports whether c was added.
func (s *CategorySet) Add(c CategoryConfig) bool {
	if s.byKey == nil {
		s.byKey = make(map[string]CategoryConfig)
	}
	if _, ok := s.byKey[c.Key()]; ok {
		return false
	}
	s.byKey[c.Key()] = c
	s.order = append(s.order, c.Key())
	return true
}

// Contains reports whether a config equal to c is in the set.
func (s *CategorySet) Contains(c CategoryConfig) bool {
	_, ok := s.byKey[c.Key()]
	return ok
}

// Get returns the stored config with the given label.
func (s *CategorySet) Get(label string) (CategoryConfig, bool) {
	c, ok := s.byKey[label]
	return c, ok
}

func (s *CategorySet) Len() int { return len(s.order) }

// Labels returns the labels in insertion order.
func (s *CategorySet) Labels() []string { return slices.Clone(s.order) }
