//go:build !linux

package internal

import "errors"

// KeypadReader is only available on Linux.
type KeypadReader struct{}

func OpenKeypad(path string, grab bool) (*KeypadReader, error) {
	return nil, errors.New("hardware keypad requires linux")
}

func (k *KeypadReader) Events() <-chan Event {
	return nil
}

func (k *KeypadReader) Close() error {
	return nil
}
