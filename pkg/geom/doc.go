// Package geom provides the integer geometry primitives shared by the layout
// engine and its collaborators.
//
// All values are plain value types whose zero value is meaningful:
// [Point] is the origin, [Size] is "nothing resolved yet" and [EdgeInsets]
// is "no padding". Coordinates are relative to the parent's content box.
package geom
