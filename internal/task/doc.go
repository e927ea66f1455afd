// Package task provides explicit task values for fan-out/join concurrency.
//
// Spawn starts an independent task immediately and returns a Future for its
// result. JoinAll waits for a sequence of futures and returns their values
// in the order the futures were given, never in completion order, so the
// output of a fan-out is reproducible regardless of scheduling.
//
// A Scheduler bounds how many spawned tasks run at the same time. Spawning
// never blocks: every task is issued up front and waits for a slot inside
// its own goroutine. Spawned tasks are not cancelled by a failing sibling;
// each runs to completion or failure.
package task
