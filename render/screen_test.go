package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/terminal"
)

func TestScreenRendererDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(10, 5)

	r := NewScreenRenderer(s)
	style := terminal.NewSettings(terminal.Green, terminal.Black)
	require.NoError(t, r.Draw([]Cell{
		{At: core.At(2, 3), Symbol: "P", Style: style},
		Blank(core.At(0, 0)),
	}))

	mainc, _, st, _ := s.GetContent(3, 2)
	assert.Equal(t, 'P', mainc)
	fg, _, _ := st.Decompose()
	assert.Equal(t, terminal.TcellColor(terminal.Green), fg)

	mainc, _, _, _ = s.GetContent(0, 0)
	assert.Equal(t, ' ', mainc)
}

func TestScreenRendererRejectsNegativeCells(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()

	r := NewScreenRenderer(s)
	assert.Error(t, r.Draw([]Cell{{At: core.At(0, -1), Symbol: "P"}}))
}
