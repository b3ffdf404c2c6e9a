package floodgraph

import "github.com/pkg/errors"

// ErrColorDropped is returned by Reduce when, after reduction, some color
// index below len(ColorCounts()) has no node of that color. Collapsing
// same-color edges keeps every color that has a node, so this only happens
// when the raw graph handed to Reduce already had such a gap in its colors,
// i.e. was malformed.
var ErrColorDropped = errors.New("floodgraph: reduction dropped a color entirely")

// ErrUnreachable is returned by Solve when the search frontier empties
// before reaching a goal state, i.e. the graph is not connected.
var ErrUnreachable = errors.New("floodgraph: graph not connected")
