// Package request implements the adapter that wraps a single HTTP call with
// loading, data and error state.
//
// An Adapter owns one Config. Every Load executes exactly one call with a
// snapshot of that config, attaches a bearer token read from the session at
// call time when Authorize is set, and classifies failures:
//
//   - cancellation is swallowed: nothing is stored and ErrCanceled is returned
//   - 401 on an authorized call signs the session out and returns ErrSignedOut
//   - anything else becomes an *ErrorEnvelope that is stored, returned and
//     passed to OnError
//
// Loading is cleared and OnFinish fires on every path.
//
// When calls overlap, the most recently started one owns the state. Earlier
// calls still return their own result and run their handlers but do not touch
// Data, Err or Loading.
package request
