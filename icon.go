package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
)

// loadIcon reads the tray icon and checks that it decodes as an image.
func loadIcon(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading icon: %w", err)
	}

	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decoding icon %s: %w", path, err)
	}

	return data, nil
}
