package ov64a40

// Snapshot is a point in time view of the sensor configuration
type Snapshot struct {
	Width         int              `json:"width"`
	Height        int              `json:"height"`
	BusCode       string           `json:"bus_code"`
	LinkFrequency int64            `json:"link_frequency"`
	State         string           `json:"state"`
	Controls      map[string]int64 `json:"controls"`
}

// Snapshot returns the current mode, state and control values
func (s *Sensor) Snapshot() Snapshot {

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Width:    s.mode.Width,
		Height:   s.mode.Height,
		BusCode:  s.controls.busCode().String(),
		State:    s.state.String(),
		Controls: make(map[string]int64, numControls),
	}

	if idx := s.controls.Value(CtrlLinkFreq); idx >= 0 && int(idx) < len(s.linkFrequencies) {
		snap.LinkFrequency = s.linkFrequencies[idx]
	}

	for id := ControlID(0); id < numControls; id++ {
		snap.Controls[id.String()] = s.controls.Value(id)
	}

	return snap
}
