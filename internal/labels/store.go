package labels

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"github.com/idilsaglam/labeler/internal/model"
)

// Group is a read-only view of one bucket.
type Group struct {
	ID      uuid.UUID
	Name    string
	Members int
}

// Store owns every item and the partition of items into groups.
// Buckets hold positions into items, never copies, so an item lives in
// exactly one place and is referenced by exactly one bucket.
type Store struct {
	items  []model.Item
	groups map[string][]int
	order  []string // creation order, sentinel first
	ids    map[string]uuid.UUID
}

// New returns a store holding only the empty sentinel group.
func New() *Store {
	s := &Store{
		groups: map[string][]int{},
		ids:    map[string]uuid.UUID{},
	}
	s.insertGroup(model.Sentinel)
	return s
}

// FromNames builds a store and adds one item per name, in order.
func FromNames(names []string) *Store {
	s := New()
	for _, n := range names {
		s.AddItem(n)
	}
	return s
}

func (s *Store) insertGroup(name string) {
	s.groups[name] = []int{}
	s.order = append(s.order, name)
	s.ids[name] = uuid.New()
}

// AddItem appends an item to the list and to the sentinel bucket.
func (s *Store) AddItem(name string) {
	s.items = append(s.items, model.Item{Name: name, Group: model.Sentinel})
	s.groups[model.Sentinel] = append(s.groups[model.Sentinel], len(s.items)-1)
}

// CleanName trims surrounding whitespace from a group name. Every group
// lookup goes through it, so " fruit" and "fruit" name the same group.
func CleanName(name string) string { return strings.TrimSpace(name) }

// CreateGroup adds an empty group. An existing name yields ErrDuplicateGroup
// and leaves the store untouched.
func (s *Store) CreateGroup(name string) error {
	name = CleanName(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidGroup)
	}
	if _, ok := s.groups[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateGroup, name)
	}
	s.insertGroup(name)
	return nil
}

// DeleteGroup moves every member of name back to the sentinel group, keeping
// their relative order, and then drops the group.
func (s *Store) DeleteGroup(name string) error {
	name = CleanName(name)
	if name == model.Sentinel {
		return fmt.Errorf("%w: %q cannot be deleted", ErrInvalidGroup, name)
	}
	members, ok := s.groups[name]
	if !ok {
		return fmt.Errorf("%w: %q does not exist", ErrInvalidGroup, name)
	}
	for _, idx := range members {
		s.items[idx].Group = model.Sentinel
	}
	s.groups[model.Sentinel] = append(s.groups[model.Sentinel], members...)
	delete(s.groups, name)
	delete(s.ids, name)
	s.order = slices.DeleteFunc(s.order, func(g string) bool { return g == name })
	return nil
}

// Reassign moves the item at index into group. Moving an item into the
// group it is already in puts it at the end of that bucket.
func (s *Store) Reassign(index int, group string) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(s.items), index)
	}
	group = CleanName(group)
	if _, ok := s.groups[group]; !ok {
		return fmt.Errorf("%w: %q does not exist", ErrInvalidGroup, group)
	}
	from := s.items[index].Group
	s.groups[from] = slices.DeleteFunc(s.groups[from], func(i int) bool { return i == index })
	s.groups[group] = append(s.groups[group], index)
	s.items[index].Group = group
	return nil
}

func (s *Store) ItemCount() int { return len(s.items) }

func (s *Store) ItemAt(index int) (model.Item, error) {
	if index < 0 || index >= len(s.items) {
		return model.Item{}, fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(s.items), index)
	}
	return s.items[index], nil
}

// GroupNames lists groups in creation order, sentinel first.
func (s *Store) GroupNames() []string {
	return slices.Clone(s.order)
}

// MembersOf returns copies of the items in group, in bucket order.
func (s *Store) MembersOf(group string) ([]model.Item, error) {
	group = CleanName(group)
	bucket, ok := s.groups[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q does not exist", ErrInvalidGroup, group)
	}
	out := make([]model.Item, 0, len(bucket))
	for _, idx := range bucket {
		out = append(out, s.items[idx])
	}
	return out, nil
}

// Groups returns every group with its handle and member count.
func (s *Store) Groups() []Group {
	out := make([]Group, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Group{ID: s.ids[name], Name: name, Members: len(s.groups[name])})
	}
	return out
}

// GroupID returns the stable handle of a group.
func (s *Store) GroupID(name string) (uuid.UUID, bool) {
	id, ok := s.ids[CleanName(name)]
	return id, ok
}

// GroupByID resolves a handle back to its group name.
func (s *Store) GroupByID(id uuid.UUID) (string, error) {
	for name, gid := range s.ids {
		if gid == id {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: unknown handle %s", ErrInvalidGroup, id)
}

// Labeled counts items outside the sentinel group.
func (s *Store) Labeled() int {
	return len(s.items) - len(s.groups[model.Sentinel])
}

// Closest returns the existing group name nearest to name by edit distance.
// Only names within half of name's length are considered close.
func (s *Store) Closest(name string) (string, bool) {
	best, bestDist := "", -1
	for _, g := range s.order {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(g))
		if bestDist < 0 || d < bestDist {
			best, bestDist = g, d
		}
	}
	limit := len([]rune(name)) / 2
	if limit < 1 {
		limit = 1
	}
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}

// ExportAll returns every item as a record, in list order.
func (s *Store) ExportAll() []model.Record {
	out := make([]model.Record, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, model.Record{Name: it.Name, Group: it.Group})
	}
	return out
}

// Check verifies the partition: every item sits in exactly one bucket, the
// bucket matches the item's group, and the sentinel exists.
func (s *Store) Check() error {
	if _, ok := s.groups[model.Sentinel]; !ok {
		return fmt.Errorf("sentinel group %q missing", model.Sentinel)
	}
	if len(s.order) != len(s.groups) || len(s.ids) != len(s.groups) {
		return fmt.Errorf("group bookkeeping out of sync: %d ordered, %d buckets, %d handles",
			len(s.order), len(s.groups), len(s.ids))
	}
	seen := make([]int, len(s.items))
	for name, bucket := range s.groups {
		for _, idx := range bucket {
			if idx < 0 || idx >= len(s.items) {
				return fmt.Errorf("group %q holds invalid index %d", name, idx)
			}
			if s.items[idx].Group != name {
				return fmt.Errorf("item %d (%q) is in bucket %q but says %q",
					idx, s.items[idx].Name, name, s.items[idx].Group)
			}
			seen[idx]++
		}
	}
	for idx, n := range seen {
		if n != 1 {
			return fmt.Errorf("item %d (%q) appears in %d buckets", idx, s.items[idx].Name, n)
		}
	}
	return nil
}
