// Package scenefile reads and writes human-authored scene documents and
// builds layer trees from them.
//
// A scene document describes a root composition and its layers in YAML or
// TOML:
//
//	name: title
//	width: 720
//	height: 480
//	frameRate: 60
//	duration: 2000000
//	layers:
//	  - name: caption
//	    kind: text
//	    text: Hello world
//	    fontSize: 48
//	    transform:
//	      position: {x: 40, y: 200}
//	    motion: {type: slide, direction: up, duration: 500000, effect: letter}
//	    trackMatte: {layer: mask, mode: alpha}
//	  - name: mask
//	    kind: solid
//	    color: [255, 255, 255]
//
// Times are in microseconds. Keyframe frames are layer frames at the
// layer's frame rate.
//
// Load a document and build its tree:
//
//	doc, err := scenefile.Load("title.yaml")
//	if err != nil {
//	    return err
//	}
//	root, err := scenefile.Build(doc)
//
// Build reports problems with individual layers as *LayerError values that
// wrap the package's sentinel errors.
package scenefile
