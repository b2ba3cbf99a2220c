// Package stream lifts Result values over channels for fan-out processing of
// many independent outcomes. It carries no sequencing semantics; ordered,
// dependent steps belong to package do.
//
// Key operations:
// - ToChan/ToChanResults: emit values, or values lifted into successes
// - Collect/First: drain a channel into a slice or take the first value
// - Pump: apply a context-aware step across a channel with N workers
// - WithWorkers/Workers: carry the worker count on the context
package stream
