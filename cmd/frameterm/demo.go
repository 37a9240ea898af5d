package main

import (
	"github.com/lixenwraith/frameterm/audio"
	"github.com/lixenwraith/frameterm/input"
	"github.com/lixenwraith/frameterm/pattern"
)

// markerStep is the marker move per arrow press, in pixels
const markerStep = 2

// demo reacts to drained key events so queue and hold timing are visible
type demo struct {
	marker  *pattern.Marker
	clicker *audio.Clicker // nil when clicks are off
}

func (d *demo) handle(ev input.KeyEvent) {
	if d.clicker != nil {
		d.clicker.Click(ev)
	}

	switch ev.Code {
	case input.KeyFire, input.KeyUse:
		// Lit while held, so the synthesized release is visible
		d.marker.SetLit(ev.Pressed)
		return
	}
	if !ev.Pressed {
		return
	}

	switch ev.Code {
	case input.KeyLeftArrow, input.KeyStrafeL, 'a':
		d.marker.Move(-markerStep, 0)
	case input.KeyRightArrow, input.KeyStrafeR, 'd':
		d.marker.Move(markerStep, 0)
	case input.KeyUpArrow, 'w':
		d.marker.Move(0, -markerStep)
	case input.KeyDownArrow, 's':
		d.marker.Move(0, markerStep)
	case 'm':
		if d.clicker != nil {
			d.clicker.SetMuted(!d.clicker.Muted())
		}
	}
}
