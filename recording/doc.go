// Package recording defines the drawing sink a layer tree renders into and
// a recorder that captures the calls as typed commands.
//
// The layer package never rasterizes. A draw pass walks the tree and issues
// Save, Restore, Concat, SetAlpha, BeginMatte, EndMatte and the content
// calls against a Recorder. CommandRecorder keeps those calls as Command
// values so a frame can be inspected, summarised or replayed into another
// Recorder.
//
// # Example
//
//	rec := recording.NewCommandRecorder()
//	layer.Draw(root, rec)
//	r := rec.Finish()
//	fmt.Println(r.Summary())
//
// Sinks can be registered by name, following the database/sql driver
// pattern:
//
//	func init() {
//	    recording.Register("trace", func() recording.Recorder {
//	        return newTraceRecorder(os.Stderr)
//	    })
//	}
package recording
