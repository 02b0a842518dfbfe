// Package layer implements the scene graph: layers, compositions, text
// layers, track mattes and the time mapping between nested timelines.
//
// # Ownership
//
// A Composition exclusively owns its children; paint order is child order.
// A layer may instead be the track matte of exactly one other layer, in
// which case the owner holds it outside the paint list. Parents and matte
// owners are weak back-references.
//
// # Time
//
// Every layer has its own frame rate. StartFrame, duration and the
// keyframes of a layer's properties are counted in that rate. A layer's
// local time is time on its owner's timeline, and its content frame is
// TimeToFrame(localTime) - StartFrame. Content frames outside
// [0, duration) mean the layer is not visible.
//
// # Concurrency
//
// All layers of an attached tree share one lock domain. Every exported
// method locks the domain of the layer it is called on for the duration of
// the call; Draw holds the root's domain for a whole render pass, so a
// render observes a mutation either completely or not at all. Detaching a
// layer moves its subtree onto a fresh private domain.
package layer
