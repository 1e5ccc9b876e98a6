package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Device            DeviceJSON       `json:"device"`
	State             string           `json:"state"`
	Connected         bool             `json:"connected"`
	Link              *LinkJSON        `json:"link,omitempty"`
	LED               string           `json:"led"`
	ReconnectAttempts int              `json:"reconnect_attempts"`
	UptimeSeconds     int64            `json:"uptime_seconds"`
	StartTime         string           `json:"start_time"`
	Timestamp         string           `json:"timestamp"`
	Counts            CountsJSON       `json:"state_counts"`
	History           []TransitionJSON `json:"history,omitempty"`
	Config            ConfigJSON       `json:"config"`
}

// DeviceJSON identifies the device.
type DeviceJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LinkJSON is the JSON representation of the wireless link.
type LinkJSON struct {
	SSID    string `json:"ssid"`
	IP      string `json:"ip,omitempty"`
	MAC     string `json:"mac,omitempty"`
	RSSIDbm int    `json:"rssi_dbm,omitempty"`
}

// CountsJSON is the JSON representation of transition counts.
type CountsJSON struct {
	Connecting   int `json:"connecting"`
	Connected    int `json:"connected"`
	Disconnected int `json:"disconnected"`
	Errors       int `json:"errors"`
}

// TransitionJSON is one history entry.
type TransitionJSON struct {
	At string `json:"at"`
	To string `json:"to"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs      int64  `json:"poll_ms"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	TimeoutMs   int64  `json:"timeout_ms"`
	BackoffMs   int64  `json:"backoff_ms"`
	Interface   string `json:"interface"`
	HTTPAddr    string `json:"http_addr,omitempty"`
}

func buildInner(snap Snapshot) StatusInner {
	state := string(snap.State)
	if state == "" {
		state = "UNKNOWN"
	}
	pattern := string(snap.LED)
	if pattern == "" {
		pattern = "OFF"
	}

	inner := StatusInner{
		Device: DeviceJSON{
			ID:   snap.Config.DeviceID,
			Name: snap.Config.DeviceName,
		},
		State:             state,
		Connected:         snap.Connected(),
		LED:               pattern,
		ReconnectAttempts: snap.Attempts,
		UptimeSeconds:     int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:         snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:         snap.Now.UTC().Format(time.RFC3339),
		Counts: CountsJSON{
			Connecting:   snap.Counts.Connecting,
			Connected:    snap.Counts.Connected,
			Disconnected: snap.Counts.Disconnected,
			Errors:       snap.Counts.Errors,
		},
		Config: ConfigJSON{
			PollMs:      snap.Config.PollMs,
			HeartbeatMs: snap.Config.HeartbeatMs,
			TimeoutMs:   snap.Config.TimeoutMs,
			BackoffMs:   snap.Config.BackoffMs,
			Interface:   snap.Config.Interface,
			HTTPAddr:    snap.Config.HTTPAddr,
		},
	}

	for _, tr := range snap.History {
		inner.History = append(inner.History, TransitionJSON{
			At: tr.At.UTC().Format(time.RFC3339),
			To: string(tr.To),
		})
	}
	return inner
}

func buildLink(snap Snapshot, inner *StatusInner) {
	if snap.Link.SSID == "" && snap.Link.IP == "" {
		return
	}
	inner.Link = &LinkJSON{
		SSID:    snap.Link.SSID,
		IP:      snap.Link.IP,
		MAC:     snap.Link.MAC,
		RSSIDbm: snap.Link.RSSI,
	}
}

// FormatJSON returns the JSON status served by the web endpoint.
func FormatJSON(snap Snapshot) []byte {
	inner := buildInner(snap)
	buildLink(snap, &inner)

	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}
