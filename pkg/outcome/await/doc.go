// Package await lifts the outcome combinators onto deferred receivers.
//
// Every function awaits the receiver future and then delegates to the
// synchronous combinator on the completed value, so deferred and
// synchronous chains cannot drift apart. Once the receiver has settled, the
// produced outcome is exactly what the synchronous combinator would have
// returned for it.
//
// Rules shared by all adapters:
// - nil continuations/producers/fallbacks panic synchronously, before the
//   receiver is awaited
// - at most one suspension per awaited input; short-circuit paths never
//   touch the continuation
// - a receiver future that settles with an error (including cancellation of
//   the future primitive) propagates that error as the returned future's
//   error, untranslated
//
// The adapters are generic over the outcome.Sequencer and outcome.Fallback
// contracts, so one body serves Result, ResultOf and Maybe alike.
package await
