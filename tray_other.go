//go:build !darwin

package main

import "context"

func runMenuBar(_ context.Context, _ []byte, _ func(Tray) *Loop) error {
	return errUnsupportedPlatform
}
