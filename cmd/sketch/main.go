// Command sketch is a small vector drawing editor built on the sketch engine.
//
//	sketch draw                       open the editor on drawing.svg
//	sketch export --format png --out drawing.png
//
// Every flag can also be set in sketch.yaml or through a SKETCH_ environment
// variable, e.g. SKETCH_FILE=/tmp/d.svg or SKETCH_HANDLE_SIZE=14.
package main

import "log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.Fatal(err)
	}
}
