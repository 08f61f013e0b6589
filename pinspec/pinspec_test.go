// SPDX-License-Identifier: Unlicense OR MIT

package pinspec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pinui.org/anchor"
	"pinui.org/pin"
	"pinui.org/pinspec"
)

// TestPin verifies the full path from YAML to constraints.
func TestPin(t *testing.T) {
	spec, err := pinspec.Parse([]byte(`
edges: [top, left, right]
insets: {top: 8, left: 16, right: 16}
except: [right]
priority: high
`))
	require.NoError(t, err)

	parent := anchor.NewView("parent")
	child := anchor.NewView("child")
	res, err := spec.Pin(child, parent)
	require.NoError(t, err)
	require.NotNil(t, res.Top)
	require.NotNil(t, res.Leading)
	require.Nil(t, res.Bottom)
	require.Nil(t, res.Trailing, "excluded edge")
	require.Equal(t, float32(8), res.Top.Constant)
	require.Equal(t, float32(16), res.Leading.Constant)
	require.Equal(t, anchor.High, res.Top.Priority)
	require.Equal(t, anchor.High, res.Leading.Priority)
	require.False(t, child.TranslatesFrameToConstraints())
}

// TestCompileDefaults verifies that an empty document selects all
// edges at required priority.
func TestCompileDefaults(t *testing.T) {
	spec, err := pinspec.Parse(nil)
	require.NoError(t, err)
	e, p, err := spec.Compile()
	require.NoError(t, err)
	require.Equal(t, pin.Edges{}, e)
	require.Equal(t, anchor.Required, p)

	parent := anchor.NewView("parent")
	child := anchor.NewView("child")
	res, err := spec.Pin(child, parent)
	require.NoError(t, err)
	require.Len(t, res.Constraints(), 4)
}

// TestCompileAll verifies the "all" edge name.
func TestCompileAll(t *testing.T) {
	spec := pinspec.Spec{Edges: []string{"all"}, Except: []string{"bottom"}}
	e, _, err := spec.Compile()
	require.NoError(t, err)
	require.Equal(t, pin.All, e.Edges)
	require.Equal(t, pin.Bottom, e.Except)
}

// TestUnknownEdge verifies edge-name errors in edges, except and
// insets.
func TestUnknownEdge(t *testing.T) {
	for _, spec := range []pinspec.Spec{
		{Edges: []string{"leading"}},
		{Except: []string{"middle"}},
		{Insets: map[string]float32{"start": 4}},
	} {
		_, _, err := spec.Compile()
		require.ErrorIs(t, err, pinspec.ErrUnknownEdge)
	}
}

// TestUnknownPriority verifies the priority-name error.
func TestUnknownPriority(t *testing.T) {
	_, _, err := pinspec.Spec{Priority: "must"}.Compile()
	require.ErrorIs(t, err, pinspec.ErrUnknownPriority)

	parent := anchor.NewView("parent")
	child := anchor.NewView("child")
	_, err = pinspec.Spec{Priority: "must"}.Pin(child, parent)
	require.ErrorIs(t, err, pinspec.ErrUnknownPriority)
}

// TestParseRejectsUnknownKeys verifies strict decoding.
func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := pinspec.Parse([]byte("edges: [top]\noffset: 3\n"))
	require.Error(t, err)
}

// TestParseMalformed verifies decode errors are surfaced.
func TestParseMalformed(t *testing.T) {
	_, err := pinspec.Parse([]byte("edges: ["))
	require.Error(t, err)
}
