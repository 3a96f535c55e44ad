// Package view defines the content variants a layout tree node can hold.
//
// Every variant satisfies [Content]: it answers wanted-size queries for a
// proposed width or height and exposes a mutable [Frame] that the layout
// engine writes resolved sizes and origins into. The variant set is closed:
//
//   - [Text]: a string measured by a [measure.Measurer]
//   - [Divider]: a thin rule, zero-sized until a horizontal stack stretches it
//   - [Padding]: another content plus fixed [geom.EdgeInsets]
//   - [HStack] and [VStack]: arrangement markers for branch nodes
//
// Arrangement and padding are orthogonal properties of a content value,
// reported by [Content.Arrangement] and [Content.Insets], so the engine never
// has to type-switch on variants.
package view
