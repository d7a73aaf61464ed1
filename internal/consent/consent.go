// Package consent persists the single consent flag shown by the startup banner.
package consent

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	StateUnset    State = ""
	StateAccepted State = "accepted"
	StateDeclined State = "declined"
)

const (
	BannerText   = "Ce site utilise des cookies pour améliorer votre expérience."
	AcceptLabel  = "Accepter"
	DeclineLabel = "Refuser"
)

var ErrInvalidState = errors.New("invalid consent state")

// State is the stored consent decision.
type State string

// ParseState accepts "accepted", "declined" and "" (unset).
func ParseState(s string) (State, error) {
	switch st := State(s); st {
	case StateUnset, StateAccepted, StateDeclined:
		return st, nil
	default:
		return StateUnset, fmt.Errorf("%w: %q", ErrInvalidState, s)
	}
}

// NeedsBanner reports whether the banner must be shown.
func (s State) NeedsBanner() bool {
	return s == StateUnset
}

// NewStore returns a store backed by the YAML file at path.
func NewStore(path string) Store {
	return Store{path: path}
}

// DefaultPath is the consent file inside the user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "vsa", "consent.yaml")
}

type Store struct {
	path string
}

type document struct {
	Consent State `yaml:"consent"`
}

// Load reads the stored state; a missing file is StateUnset.
func (s Store) Load() (State, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return StateUnset, nil
	}
	if err != nil {
		return StateUnset, errors.Wrapf(err, "reading consent file %s", s.path)
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return StateUnset, errors.Wrapf(err, "decoding consent file %s", s.path)
	}
	return ParseState(string(doc.Consent))
}

// Save writes the state, replacing the file atomically. Saving StateUnset removes the file.
func (s Store) Save(state State) error {
	if _, err := ParseState(string(state)); err != nil {
		return err
	}
	if state == StateUnset {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Wrapf(err, "removing consent file %s", s.path)
		}
		return nil
	}

	raw, err := yaml.Marshal(document{Consent: state})
	if err != nil {
		return errors.Wrap(err, "encoding consent")
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	tmp, err := os.CreateTemp(dir, ".consent-*")
	if err != nil {
		return errors.Wrap(err, "creating temporary consent file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing consent")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing consent")
	}
	return errors.Wrapf(os.Rename(tmp.Name(), s.path), "saving consent file %s", s.path)
}

func (s Store) Path() string {
	return s.path
}
