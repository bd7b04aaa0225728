// Package style holds the watch face configuration and reacts to user
// style changes.
//
// A [Config] is an immutable value: color scheme, minute-hand length and
// whether hour pips are drawn. Style changes arrive as an [Event], a map
// from [SettingID] to a typed [Option]. [Apply] folds an event into the
// current config and reports whether anything actually changed.
//
// The [Manager] owns the live config for a running face. It recomputes the
// [Palette] and recolors complication slots only when [Apply] reports a
// change, so repeated or empty events are free. Hand geometry is cached
// per surface size and recalculated once after the hand length setting is
// touched.
//
// Events are delivered by a [Stream], which dispatches on a single
// goroutine and hands out cancellable [Subscription] values.
//
// # Usage
//
//	stream := style.NewStream(8)
//	m := style.NewManager(style.Default(), style.WithSlots(slots...))
//	m.Attach(stream)
//	go stream.Run(ctx)
//
//	_ = stream.Publish(ctx, style.Event{
//	    style.SettingColorStyle: style.ColorChoice{ID: style.Blue},
//	})
//
//	snap := m.Snapshot(454, 454)
//	// snap.Config, snap.Palette, snap.Geometry feed one frame
//
//	m.Close() // unsubscribes; no further events reach m
package style
