package fuzzy

// Catalog is an ordered family of sets with unique names, validated once and
// read-only afterwards. Callers own the catalog and pass it explicitly.
type Catalog struct {
	sets []*Set
}

// NewCatalog checks every set and name uniqueness. An empty catalog is
// allowed and evaluates to an empty Result.
func NewCatalog(sets ...*Set) (*Catalog, error) {
	seen := make(map[string]bool, len(sets))
	cp := make([]*Set, 0, len(sets))
	for _, s := range sets {
		if !s.valid() {
			name := ""
			if s != nil {
				name = s.name
			}
			return nil, invalid(name, ErrNilSet)
		}
		if seen[s.name] {
			return nil, invalid(s.name, ErrDuplicateName)
		}
		seen[s.name] = true
		cp = append(cp, s)
	}
	return &Catalog{sets: cp}, nil
}

// Evaluate returns the membership vector of value in catalog order.
func (c *Catalog) Evaluate(value float64) Result {
	return evaluate(value, c.sets)
}

// Sets returns the catalog sets in order. The slice is a copy; the sets
// themselves are immutable.
func (c *Catalog) Sets() []*Set {
	cp := make([]*Set, len(c.sets))
	copy(cp, c.sets)
	return cp
}

// Names returns the set names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.sets))
	for i, s := range c.sets {
		names[i] = s.name
	}
	return names
}

// Lookup returns the named set.
func (c *Catalog) Lookup(name string) (*Set, bool) {
	for _, s := range c.sets {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// Len returns the number of sets.
func (c *Catalog) Len() int { return len(c.sets) }
