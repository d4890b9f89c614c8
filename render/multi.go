package render

import "errors"

// MultiRenderer fans every Draw out to several renderers
type MultiRenderer struct {
	renderers []Renderer
}

// Multi combines renderers; nil entries are skipped
func Multi(renderers ...Renderer) *MultiRenderer {
	m := &MultiRenderer{}
	for _, r := range renderers {
		if r != nil {
			m.renderers = append(m.renderers, r)
		}
	}
	return m
}

// Draw forwards cells to every renderer, all of them are attempted
func (m *MultiRenderer) Draw(cells []Cell) error {
	var errs []error
	for _, r := range m.renderers {
		if err := r.Draw(cells); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
