//go:build !darwin

package main

func newSystemEnumerator() (Enumerator, error) {
	return nil, errUnsupportedPlatform
}
