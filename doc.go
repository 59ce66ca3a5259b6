// Package chartkit renders tabular numeric datasets as charts on a
// retained-mode scene graph for [Ebitengine].
//
// The core turns a [Dataset] into a [Summary] (keys, totals, extrema and
// color thresholds), builds scales from it, and lays the data out with one of
// two geometry algorithms: an angular [Partition] for donut charts and a
// banded [Grid] for heat maps. Charts materialize the layout as [Node] trees
// and keep them in sync across renders with a keyed data-join.
//
// # Quick start
//
//	scene := chartkit.NewScene()
//	donut := chartkit.NewDonutChart().SetWidth(400).SetHeight(300)
//	donut.On(chartkit.EventValueClick, func(e chartkit.Event) {
//		fmt.Println(e.Value.Key, e.Value.Value)
//	})
//	if err := donut.Render(scene.Root(), ds); err != nil {
//		log.Fatal(err)
//	}
//	chartkit.Run(scene, chartkit.RunConfig{Title: "Donut", Width: 400, Height: 300})
//
// Calling Render again with new data updates the same nodes in place: nodes
// are matched by Series key and then DataPoint key, never by position, and
// move to their new geometry with a [gween] transition.
//
// # Headless output
//
// [Scene.WriteSVG] settles all transitions and writes the tree as SVG, so
// charts can be rendered without a window. Pointer input can be simulated
// with [Scene.InjectClick] and friends.
//
// # Errors
//
// Structural problems abort only the affected render and are returned
// wrapped; match them with errors.Is against [ErrEmptyDataset],
// [ErrEmptyDomain], [ErrZeroTotal] and [ErrUnknownSeries]. Malformed values never fail a render:
// they are drawn as 0.
//
// ECS integration is available via the [Donburi] adapter in chartkit/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package chartkit
