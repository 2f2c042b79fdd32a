package models

import "time"

// PunchReport is the inbound payload from the physical machine, either a
// sensed punch or a heartbeat ping. Force is a pointer because a
// legitimate zero-force reading must be distinguishable from a missing
// field.
type PunchReport struct {
	Type      string   `json:"type,omitempty"` // "ping" for heartbeats
	SessionID string   `json:"session_id"`
	Force     *float64 `json:"force"`
	DeviceID  string   `json:"device_id,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
	Status    string   `json:"status,omitempty"`
}

// IsPing reports whether the payload is a heartbeat rather than a punch.
func (p *PunchReport) IsPing() bool {
	return p.Type == "ping"
}

// PunchResultResponse acknowledges the machine's report. The machine
// resends on a dropped acknowledgement, so duplicates are always acked
// successfully; DatabaseUpdated tells it whether this delivery was the
// one that landed.
type PunchResultResponse struct {
	Success         bool   `json:"success"`
	DatabaseUpdated bool   `json:"database_updated"`
	Error           string `json:"error,omitempty"`
}

// PunchEvent is published on the per-session punch channel and on the
// fixed admin feed after the store write succeeds.
type PunchEvent struct {
	SessionID string    `json:"session_id"`
	Force     float64   `json:"force"`
	Status    string    `json:"status"`
	DeviceID  string    `json:"device_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PunchEventCompleted is the only status the orchestrator acts on.
const PunchEventCompleted = "completed"
