// SPDX-License-Identifier: Unlicense OR MIT

package pin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pinui.org/anchor"
	"pinui.org/geom"
	"pinui.org/pin"
)

// spyBox counts translation-mode writes. Anchors come from the
// embedded guide.
type spyBox struct {
	*anchor.Guide
	translates bool
	sets       int
}

func (b *spyBox) TranslatesFrameToConstraints() bool {
	return b.translates
}

func (b *spyBox) SetTranslatesFrameToConstraints(t bool) {
	b.translates = t
	b.sets++
}

func newSpyBox() *spyBox {
	return &spyBox{Guide: anchor.NewGuide("spy"), translates: true}
}

// TestPinOptsOutFrameTranslation verifies that every pin operation
// turns frame translation off on the pinned box.
func TestPinOptsOutFrameTranslation(t *testing.T) {
	target := anchor.NewView("target")
	ops := map[string]func(b anchor.Box){
		"edges":       func(b anchor.Box) { pin.Edges{}.Pin(b, target) },
		"horizontal":  func(b anchor.Box) { pin.Horizontally(b, target, 0, 0) },
		"vertical":    func(b anchor.Box) { pin.Vertically(b, target, 0, 0) },
		"center":      func(b anchor.Box) { pin.Center(b, target, geom.Point{}) },
		"sizeTo":      func(b anchor.Box) { pin.SizeTo(b, target) },
		"size":        func(b anchor.Box) { pin.Size(b, geom.Point{X: 1, Y: 1}) },
		"uniformSize": func(b anchor.Box) { pin.UniformSize(b, 1) },
	}
	for name, op := range ops {
		b := newSpyBox()
		op(b)
		require.False(t, b.translates, name)
		require.Equal(t, 1, b.sets, name)
	}
}

// TestOptOutIsIdempotent verifies the one-way transition: a second
// pin on a box already in constraint mode writes nothing.
func TestOptOutIsIdempotent(t *testing.T) {
	target := anchor.NewView("target")
	b := newSpyBox()
	pin.Edges{}.Pin(b, target)
	require.Equal(t, 1, b.sets)
	pin.Edges{}.Pin(b, target)
	pin.Center(b, target, geom.Point{})
	pin.UniformSize(b, 10)
	require.Equal(t, 1, b.sets, "no redundant transition")
	require.False(t, b.translates)
}

// TestOptOutRunsWithZeroResolvedEdges verifies the side effect runs
// even when the exclusion empties the selection.
func TestOptOutRunsWithZeroResolvedEdges(t *testing.T) {
	target := anchor.NewView("target")
	b := newSpyBox()
	res := pin.Edges{Except: pin.All}.Pin(b, target)
	require.Empty(t, res.Constraints())
	require.Nil(t, res.Top)
	require.Nil(t, res.Leading)
	require.Nil(t, res.Bottom)
	require.Nil(t, res.Trailing)
	require.Equal(t, 1, b.sets)
	require.False(t, b.translates)
}

// TestGuideNeedsNoOptOut verifies boxes without the capability are
// pinned without incident.
func TestGuideNeedsNoOptOut(t *testing.T) {
	target := anchor.NewView("target")
	g := anchor.NewGuide("g")
	require.NotPanics(t, func() { pin.Edges{}.Pin(g, target) })
}
