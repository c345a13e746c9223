package reference

import (
	"fmt"
	"slices"

	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/internal/collision"
	"github.com/arloliu/growth/internal/hash"
)

// Catalog is an immutable set of reference rows keyed by measurement type and
// sex. It is safe for concurrent reads.
type Catalog struct {
	rows map[uint64][]Row
	keys []string
}

// Key returns the catalog key of a measurement type and sex, e.g. "weight/male".
func Key(t format.MeasurementType, sex format.Sex) string {
	return t.String() + "/" + sex.String()
}

// KeyID returns the xxHash64 identifier of Key(t, sex).
func KeyID(t format.MeasurementType, sex format.Sex) uint64 {
	return hash.ID(Key(t, sex))
}

// NewCatalog builds a catalog from validated tables. Each table contributes
// one entry per sex it contains.
//
// Returns an error if a table fails validation or if two tables provide rows
// for the same measurement type and sex.
func NewCatalog(tables ...Table) (*Catalog, error) {
	c := &Catalog{rows: make(map[uint64][]Row)}
	tracker := collision.NewTracker()

	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%s table: %w", t.Type, err)
		}

		for _, sex := range t.Sexes() {
			key := Key(t.Type, sex)
			id := hash.ID(key)
			if err := tracker.Track(key, id); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			c.rows[id] = t.ForSex(sex)
		}
	}
	c.keys = tracker.Keys()

	return c, nil
}

// Lookup returns the rows of measurement type t for sex. The returned slice
// must not be modified.
func (c *Catalog) Lookup(t format.MeasurementType, sex format.Sex) ([]Row, bool) {
	if c == nil {
		return nil, false
	}
	rows, ok := c.rows[KeyID(t, sex)]

	return rows, ok
}

// Keys returns a copy of the catalog keys in registration order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}

	return slices.Clone(c.keys)
}
