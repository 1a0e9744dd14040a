// Package internal contains the SDL plumbing behind the phone input widget:
// window and renderer setup, fonts, input translation, drawing helpers and
// the optional hardware keypad reader.
// Types and functions in this package are not part of the public API.
package internal
