// Package scene loads scripted field demos from TOML and plays them back
package scene

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/field"
	"github.com/lixenwraith/sista/terminal"
)

// DefaultInterval is the step delay when a scene sets none
const DefaultInterval = 500 * time.Millisecond

// Scene is a field, its pawns and a list of move batches
type Scene struct {
	Width    int         `toml:"width"`
	Height   int         `toml:"height"`
	Interval string      `toml:"interval"`
	Border   *BorderSpec `toml:"border"`
	Pawns    []PawnSpec  `toml:"pawns"`
	Steps    []Step      `toml:"steps"`

	interval time.Duration
}

// BorderSpec describes the frame glyph
type BorderSpec struct {
	Symbol     string   `toml:"symbol"`
	Foreground string   `toml:"foreground"`
	Background string   `toml:"background"`
	Attributes []string `toml:"attributes"`
}

// PawnSpec describes one named pawn and its starting cell
type PawnSpec struct {
	Name       string   `toml:"name"`
	Symbol     string   `toml:"symbol"`
	Row        int      `toml:"row"`
	Col        int      `toml:"col"`
	Foreground string   `toml:"foreground"`
	Background string   `toml:"background"`
	Attributes []string `toml:"attributes"`
}

// Step is one batch of moves applied together
type Step struct {
	Moves []Move `toml:"moves"`
}

// Move sends a named pawn to a cell
type Move struct {
	Pawn string `toml:"pawn"`
	Row  int    `toml:"row"`
	Col  int    `toml:"col"`
}

// Parse decodes and validates a scene
func Parse(data []byte) (*Scene, error) {
	var s Scene
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scene from r
func Load(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read scene")
	}
	return Parse(data)
}

// LoadFile reads a scene file
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scene %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	return s, nil
}

// Delay returns the parsed step interval
func (s *Scene) Delay() time.Duration {
	if s.interval <= 0 {
		return DefaultInterval
	}
	return s.interval
}

func (s *Scene) validate() error {
	area := core.Area{Width: s.Width, Height: s.Height}
	if !area.Valid() {
		return errors.Wrapf(core.ErrInvalidDimension, "scene %dx%d", s.Width, s.Height)
	}

	s.interval = DefaultInterval
	if s.Interval != "" {
		d, err := time.ParseDuration(s.Interval)
		if err != nil || d <= 0 {
			return errors.Wrapf(core.ErrInvalidArgument, "interval %q", s.Interval)
		}
		s.interval = d
	}

	if s.Border != nil {
		if !field.ValidSymbol(s.Border.Symbol) {
			return errors.Wrapf(core.ErrInvalidArgument, "border symbol %q", s.Border.Symbol)
		}
		if _, err := s.Border.Style(); err != nil {
			return errors.Wrap(err, "border")
		}
	}

	names := make(map[string]struct{}, len(s.Pawns))
	cells := make(map[core.Coordinates]string, len(s.Pawns))
	for i, p := range s.Pawns {
		if p.Name == "" {
			return errors.Wrapf(core.ErrInvalidArgument, "pawn #%d has no name", i)
		}
		if _, dup := names[p.Name]; dup {
			return errors.Wrapf(core.ErrInvalidArgument, "pawn %q defined twice", p.Name)
		}
		names[p.Name] = struct{}{}
		if !field.ValidSymbol(p.Symbol) {
			return errors.Wrapf(core.ErrInvalidArgument, "pawn %q symbol %q", p.Name, p.Symbol)
		}
		if _, err := p.Style(); err != nil {
			return errors.Wrapf(err, "pawn %q", p.Name)
		}
		if !area.Contains(p.At()) {
			return errors.Wrapf(core.ErrInvalidArgument, "pawn %q at %s outside %dx%d scene", p.Name, p.At(), s.Width, s.Height)
		}
		if other, taken := cells[p.At()]; taken {
			return errors.Wrapf(core.ErrInvalidArgument, "pawns %q and %q share %s", other, p.Name, p.At())
		}
		cells[p.At()] = p.Name
	}

	for i, step := range s.Steps {
		for _, m := range step.Moves {
			if _, ok := names[m.Pawn]; !ok {
				return errors.Wrapf(core.ErrInvalidArgument, "step %d moves unknown pawn %q", i, m.Pawn)
			}
		}
	}
	return nil
}

// Style resolves the border colors and attributes
func (b *BorderSpec) Style() (terminal.Settings, error) {
	return parseStyle(b.Foreground, b.Background, b.Attributes)
}

// Style resolves the pawn colors and attributes
func (p *PawnSpec) Style() (terminal.Settings, error) {
	return parseStyle(p.Foreground, p.Background, p.Attributes)
}

// At returns the starting cell
func (p *PawnSpec) At() core.Coordinates {
	return core.At(p.Row, p.Col)
}

// parseStyle defaults to white on black when colors are omitted
func parseStyle(fg, bg string, attrs []string) (terminal.Settings, error) {
	s := terminal.DefaultSettings
	var err error
	if fg != "" {
		if s.Foreground, err = terminal.ParseColor(fg); err != nil {
			return terminal.Settings{}, err
		}
	}
	if bg != "" {
		if s.Background, err = terminal.ParseColor(bg); err != nil {
			return terminal.Settings{}, err
		}
	}
	for _, name := range attrs {
		a, err := terminal.ParseAttribute(name)
		if err != nil {
			return terminal.Settings{}, err
		}
		s = s.WithAttribute(a)
	}
	return s, nil
}
