// Package timeline converts between microsecond time, integer frames and
// normalised progress, and rescales frames between scopes running at
// different frame rates.
//
// Hosts exchange time in microseconds. Layers store frames at their own
// rate; every conversion between rates rounds half to even so that
// results do not depend on platform float-to-int behaviour.
package timeline
