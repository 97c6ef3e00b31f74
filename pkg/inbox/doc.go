// Package inbox implements the per-user notification log and its delivery
// pipeline.
//
// An Inbox is append-only: Notify records the notification in arrival order
// and then hands it to a Deliverer for real-time display. Delivery is best
// effort — the log is the source of truth, a failed delivery is logged and
// forgotten. New-post notifications are recorded but never delivered to the
// real-time channel, since a single publish fans out to every follower and
// would otherwise flood the console.
//
// Deliverers included here:
//
//   - NoopDeliverer: discard everything (the default)
//   - ConsoleDeliverer: write formatted delivery lines to a writer
//   - StreamDeliverer: push to live subscribers, e.g. a watching shell
//   - MultiDeliverer: combine several of the above
package inbox
