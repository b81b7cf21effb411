package main

import "errors"

func detach(_ []string, _ string) (int, error) {
	return 0, errors.New("running in the background is not supported on Windows, use --foreground")
}
