package app

import "errors"

// ErrQuit signals a user-requested exit. Run returns it on the quit keys;
// the entry point treats it as a clean shutdown.
var ErrQuit = errors.New("quit")
