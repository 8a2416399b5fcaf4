// Package viz renders quadrature rules for the terminal and for image files.
//
//   - [RenderRule]: styled node/weight table
//   - [PlotWeights]: ASCII plot of the weights against node index
//   - [SavePlot]: PNG/SVG/PDF chart of one or more rules
//   - [Explorer]: interactive Bubble Tea browser over families and orders
//
// # Key Bindings
//
//	up/down   - Select family
//	+/-       - Change order
//	a/A       - Raise/lower shape parameter a
//	b/B       - Raise/lower shape parameter b
//	T         - Cycle color themes
//	q         - Quit
package viz
