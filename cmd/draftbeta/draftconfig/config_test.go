package draftconfig_test

import (
	"testing"

	"github.com/draftbeta/draftbeta/cmd/draftbeta/draftconfig"
	"github.com/draftbeta/draftbeta/pkg/draftengine"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/require"
)

func TestLoadAndApplyExampleTemplate(t *testing.T) {
	tpl, err := draftconfig.Load("testdata/example.toml")
	require.NoError(t, err)
	require.Equal(t, 2, tpl.NumHeroes)
	require.Len(t, tpl.Heroes, 2)

	e := draftengine.New()
	require.NoError(t, tpl.Apply(e))

	result, _, err := e.RunSearch(nil, nil, nil, draftengine.Options{Workers: lang.Some(1)})
	require.NoError(t, err)
	require.Equal(t, 10, result.Value)
	require.Equal(t, 0, result.Hero)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := draftconfig.Load("testdata/does-not-exist.toml")
	require.Error(t, err)
}

func TestApplyRejectsUnknownTeam(t *testing.T) {
	tpl := &draftconfig.Template{
		NumHeroes: 1,
		Schedule:  []draftconfig.Stage{{Team: "C", Kind: "PICK"}},
	}

	e := draftengine.New()
	require.Error(t, tpl.Apply(e))
}
