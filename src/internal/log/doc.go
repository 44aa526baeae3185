// Package log provides leveled console logging for the admin console tooling.
//
// Messages are written with a colored level prefix. Debug output is only
// emitted in verbose mode, errors always go to stderr.
//
// # Example Usage
//
//	log.Infof("Loading %s from %s", path, service)
//	log.SetVerbose(true)
//	log.Debugf("request headers: %v", headers)
//
// Tests can capture output with SetOutput:
//
//	var buf bytes.Buffer
//	restore := log.SetOutput(&buf)
//	defer restore()
//
// All functions are safe for concurrent use.
package log
