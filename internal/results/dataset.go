// Package results holds the read-only competition results reference data.
package results

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/bcdxn/vsa/internal/domain"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/results.yaml
var defaultResults []byte

var (
	ErrInvalidRecord = errors.New("invalid competition record")
)

// Dataset is an immutable mapping from result-set identifier to competition record. The zero
// value is an empty dataset.
type Dataset struct {
	records map[string]domain.CompetitionRecord
	order   []string
}

// New builds a dataset from the given records, preserving their order. Records are copied so
// later changes to the arguments are not observed by the dataset.
func New(records ...domain.CompetitionRecord) (Dataset, error) {
	d := Dataset{
		records: make(map[string]domain.CompetitionRecord, len(records)),
		order:   make([]string, 0, len(records)),
	}
	for _, r := range records {
		if err := validate(r); err != nil {
			return Dataset{}, err
		}
		if _, ok := d.records[r.ID]; ok {
			return Dataset{}, fmt.Errorf("%w: duplicate id %q", ErrInvalidRecord, r.ID)
		}
		d.records[r.ID] = r.Clone()
		d.order = append(d.order, r.ID)
	}
	return d, nil
}

// Default returns the club's reference dataset embedded in the binary.
func Default() (Dataset, error) {
	records, err := decode(defaultResults)
	if err != nil {
		return Dataset{}, errors.Wrap(err, "decoding embedded results")
	}
	return New(records...)
}

// Load returns the embedded dataset overlaid with the records found in the YAML file at path.
// Fields set in the file override the embedded record with the same id; unknown ids are
// appended.
func Load(path string) (Dataset, error) {
	base, err := Default()
	if err != nil {
		return Dataset{}, err
	}
	if path == "" {
		return base, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "reading results file %s", path)
	}
	overlay, err := decode(raw)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "decoding results file %s", path)
	}
	return base.merge(overlay)
}

// Lookup returns a copy of the record identified by id. The boolean is false when the id is
// not part of the dataset.
func (d Dataset) Lookup(id string) (domain.CompetitionRecord, bool) {
	r, ok := d.records[id]
	if !ok {
		return domain.CompetitionRecord{}, false
	}
	return r.Clone(), true
}

// IDs returns the result-set identifiers in definition order.
func (d Dataset) IDs() []string {
	return append([]string(nil), d.order...)
}

// Len returns the number of result-sets.
func (d Dataset) Len() int {
	return len(d.order)
}

/* Private Helper Functions
------------------------------------------------------------------------------------------------- */

func (d Dataset) merge(overlay []domain.CompetitionRecord) (Dataset, error) {
	merged := make([]domain.CompetitionRecord, 0, len(d.order)+len(overlay))
	index := make(map[string]int, len(d.order))
	for _, id := range d.order {
		index[id] = len(merged)
		merged = append(merged, d.records[id].Clone())
	}
	for _, o := range overlay {
		i, ok := index[o.ID]
		if !ok {
			index[o.ID] = len(merged)
			merged = append(merged, o)
			continue
		}
		if err := mergo.Merge(&merged[i], o, mergo.WithOverride); err != nil {
			return Dataset{}, errors.Wrapf(err, "merging record %q", o.ID)
		}
	}
	return New(merged...)
}

func decode(raw []byte) ([]domain.CompetitionRecord, error) {
	var records []domain.CompetitionRecord
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

func validate(r domain.CompetitionRecord) error {
	if r.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}
	for _, c := range r.Categories {
		for _, a := range c.Athletes {
			if a.Rank <= 0 {
				return fmt.Errorf("%w: %q rank %d for %s in %q", ErrInvalidRecord, r.ID, a.Rank, a.Name, c.Label)
			}
		}
	}
	return nil
}
