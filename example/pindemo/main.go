// SPDX-License-Identifier: Unlicense OR MIT

// Command pindemo pins a child view and a guide inside a root view and
// prints the constraints it built.
package main

import (
	"fmt"

	"pinui.org/anchor"
	"pinui.org/geom"
	"pinui.org/pin"
	"pinui.org/pinspec"
)

func main() {
	root := anchor.NewView("root")
	root.Frame = geom.Rect{Max: geom.Point{X: 320, Y: 480}}
	content := anchor.NewView("content")
	readable := anchor.NewGuide("readable")

	edges := pin.Edges{
		Inset:  pin.UniformInset(16),
		Except: pin.Bottom,
	}.Pin(content, root)
	center := pin.Center(readable, root, geom.Point{})
	size := pin.UniformSize(readable, 240)

	footer := anchor.NewView("footer")
	spec, err := pinspec.Parse([]byte("edges: [left, bottom, right]\ninsets: {bottom: 8}\npriority: high\n"))
	if err != nil {
		panic(err)
	}
	fromYAML, err := spec.Pin(footer, root)
	if err != nil {
		panic(err)
	}

	cs := pin.Flatten([]pin.Node[*anchor.Constraint]{
		pin.Group(
			pin.Leaf(edges.Top),
			pin.Leaf(edges.Leading),
			pin.Leaf(edges.Trailing),
		),
		pin.Group(pin.Leaf(center.X), pin.Leaf(center.Y)),
		pin.Group(pin.Leaf(size.Width), pin.Leaf(size.Height)),
		pin.Group(
			pin.Leaf(fromYAML.Leading),
			pin.Leaf(fromYAML.Bottom),
			pin.Leaf(fromYAML.Trailing),
		),
	})
	anchor.Activate(cs...)

	for _, c := range cs {
		state := "inactive"
		if c.Active() {
			state = "active"
		}
		fmt.Printf("%-45v %s p=%g\n", c, state, float32(c.Priority))
	}
	fmt.Printf("content translates frame: %v\n", content.TranslatesFrameToConstraints())
}
