// Package report turns stored records into the figures shown by the CLI:
// fuzzy age classification of passengers and the dashboard aggregates.
package report

import (
	"errors"
	"strconv"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"

	"github.com/mesh-intelligence/tower/pkg/fuzzy"
	"github.com/mesh-intelligence/tower/pkg/types"
)

// Unclassified labels passengers whose age has degree 0 in every bracket.
const Unclassified = "unclassified"

// ErrNilCatalog is returned by NewAgeClassifier when no catalog is given.
var ErrNilCatalog = errors.New("report: nil catalog")

// AgeClassifier evaluates ages against a bracket catalog. Results are
// memoised per age; ages are whole years so the memo stays small.
type AgeClassifier struct {
	catalog *fuzzy.Catalog
	memo    *gocache.Cache
	logger  l.Wrapper
}

// NewAgeClassifier returns a classifier over catalog. A nil logger discards
// log output.
func NewAgeClassifier(catalog *fuzzy.Catalog, logger l.Wrapper) (*AgeClassifier, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	return &AgeClassifier{
		catalog: catalog,
		memo:    gocache.New(gocache.NoExpiration, 0),
		logger:  logger.WithFields(l.StringField(l.ClsKey, "ageClassifier")),
	}, nil
}

// Catalog returns the catalog the classifier evaluates against.
func (c *AgeClassifier) Catalog() *fuzzy.Catalog { return c.catalog }

// Classify returns the membership vector of age. The returned Result does
// not share memory with the memo.
func (c *AgeClassifier) Classify(age int) fuzzy.Result {
	key := strconv.Itoa(age)
	if cached, ok := c.memo.Get(key); ok {
		return cloneResult(cached.(fuzzy.Result))
	}
	r := c.catalog.Evaluate(float64(age))
	c.memo.Set(key, r, gocache.NoExpiration)
	c.logger.WithFields(l.IntField("age", age)).Debug("evaluated")
	return cloneResult(r)
}

// Memoised reports how many distinct ages have been evaluated.
func (c *AgeClassifier) Memoised() int { return c.memo.ItemCount() }

// PassengerBracket is the classification of one passenger.
type PassengerBracket struct {
	Passenger *types.Passenger `json:"passenger"`
	Bracket   string           `json:"bracket"`
	Degree    float64          `json:"degree"`
	Result    fuzzy.Result     `json:"classification"`
}

// ClassifyPassengers classifies each passenger by age, keeping input order.
func (c *AgeClassifier) ClassifyPassengers(passengers []*types.Passenger) []PassengerBracket {
	out := make([]PassengerBracket, 0, len(passengers))
	for _, p := range passengers {
		if p == nil {
			continue
		}
		r := c.Classify(p.Age)
		pb := PassengerBracket{Passenger: p, Bracket: Unclassified, Result: r}
		if best, ok := Strongest(r); ok {
			pb.Bracket = best.Set
			pb.Degree = best.Degree
		}
		out = append(out, pb)
	}
	return out
}

// Strongest returns the entry with the highest degree. Ties go to the entry
// that comes first. ok is false when every degree is 0.
func Strongest(r fuzzy.Result) (best fuzzy.Entry, ok bool) {
	for _, e := range r.Memberships {
		if e.Degree > best.Degree {
			best, ok = e, true
		}
	}
	return best, ok
}

// BracketHistogram counts classified passengers per bracket in catalog order,
// followed by the Unclassified bucket. Every bucket is present, even when
// empty.
func BracketHistogram(catalog *fuzzy.Catalog, rows []PassengerBracket) []types.Count {
	names := catalog.Names()
	index := make(map[string]int, len(names))
	counts := make([]types.Count, 0, len(names)+1)
	for i, name := range names {
		index[name] = i
		counts = append(counts, types.Count{Key: name})
	}
	counts = append(counts, types.Count{Key: Unclassified})

	for _, row := range rows {
		i, ok := index[row.Bracket]
		if !ok {
			i = len(names)
		}
		counts[i].Count++
	}
	return counts
}

func cloneResult(r fuzzy.Result) fuzzy.Result {
	entries := make([]fuzzy.Entry, len(r.Memberships))
	copy(entries, r.Memberships)
	return fuzzy.Result{Value: r.Value, Memberships: entries}
}
