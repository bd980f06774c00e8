// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toggle

import "cogentcore.org/toggle/events"

// PerformTap performs a tap on the switch, as the host does when it
// recognizes a click, and returns whether the tap was handled.
// A tap on a click-disabled switch does nothing. A tap on a fixed
// switch keeps the state, notifies the [Switch.OnChangeAttempt]
// observer and is reported as not handled. Otherwise the switch toggles.
func (sw *Switch) PerformTap() bool {
	if sw.state.ClickDisabled {
		return false
	}
	if sw.state.Fixed {
		sw.attempted()
		return false
	}
	sw.Toggle()
	return true
}

// stopDrag ends a drag, committing a new state if the drag ended
// with a release (up) on an enabled, unfixed switch. Otherwise the
// thumb returns to the position of the current state.
func (sw *Switch) stopDrag(up bool) {
	sw.session.mode = TouchIdle
	if sw.Host != nil {
		sw.Host.CancelDefault()
	}
	if !up || !sw.enabled || sw.state.Fixed {
		sw.commit(sw.state.Checked)
		if sw.state.Fixed {
			sw.attempted()
		}
		return
	}
	v := sw.session.velocity.VelocityDim(sw.Config.Axis)
	sw.logger.Debug("toggle: drag released", "velocity", v, "offset", sw.state.Offset)
	sw.commit(sw.state.ReleaseChecked(v, sw.Config.FlingThreshold))
}

// commit sets the checked state, notifies the change listeners if it
// changed, and animates the thumb to the matching resting offset
// unless it is already there.
func (sw *Switch) commit(checked bool) {
	if checked != sw.state.Checked {
		sw.state.Checked = checked
		sw.logger.Debug("toggle: state changed", "checked", checked)
		if sw.listeners.HasListeners(events.Change) {
			sw.listeners.Call(events.NewStateChange(events.Change, checked, sw.now()))
		}
		sw.needsRender()
	}
	target := sw.state.TargetOffset(checked)
	if sw.state.Offset == target {
		if r := sw.anim.Current(); r != nil && r.To != target {
			sw.anim.Cancel()
		}
		return
	}
	if r := sw.anim.Current(); r != nil && r.To == target {
		return // already on its way
	}
	sw.anim.Start(sw.state.Offset, target, sw.state.ScrollRange)
}

// attempted notifies the observer that a gesture was blocked
// because the switch is fixed.
func (sw *Switch) attempted() {
	sw.logger.Debug("toggle: change blocked by fixed switch", "checked", sw.state.Checked)
	if sw.onAttempt != nil {
		sw.onAttempt(sw.state.Checked)
	}
}
