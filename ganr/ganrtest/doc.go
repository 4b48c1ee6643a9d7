// Package ganrtest provides deterministic fakes for testing code built on ganr.
//
// [Probe] scripts the outcome of each round trip,
// [Adapter] toggles debugger and foreground state,
// [Clock] is a manually advanced wall clock,
// and [Recorder] captures listener events and tick results on channels.
package ganrtest
