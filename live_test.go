package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveTray_Display(t *testing.T) {
	var out bytes.Buffer
	tray := newLiveTray(&out)

	menu := BuildMenu([]Volume{bootVolume(), fixedVolume(), usbVolume()}, sequentialIDs())
	menu.Status = "Could not unmount USB"
	tray.Display(menu)

	assert.Contains(t, out.String(), "  Data: 10.00 GiB/100.00 GiB\n")
	assert.Contains(t, out.String(), "* USB: 1.00 GiB/2.00 GiB\n")
	assert.Contains(t, out.String(), "Could not unmount USB\n")
	assert.NotContains(t, out.String(), "Quit")
	assert.Nil(t, tray.Selections())
}

func TestLiveTray_NoVolumes(t *testing.T) {
	var out bytes.Buffer
	tray := newLiveTray(&out)

	tray.Display(BuildMenu([]Volume{bootVolume()}, sequentialIDs()))

	assert.Contains(t, out.String(), "No volumes mounted")
}
