package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/DuongThanhTaii/UE-Bot/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"stateOrUnknown": func(s string) string {
		if s == "" {
			return "UNKNOWN"
		}
		return s
	},
	"stateClass": func(s string) string {
		switch s {
		case "CONNECTED":
			return "connected"
		case "CONNECTING":
			return "connecting"
		case "DISCONNECTED":
			return "disconnected"
		case "ERROR":
			return "error"
		default:
			return "unknown"
		}
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta http-equiv="refresh" content="5">
<title>UE-Bot</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.connected { color: green; font-weight: bold; }
.connecting { color: orange; }
.disconnected { color: #888; }
.error { color: red; font-weight: bold; }
.unknown { color: orange; }
</style>
</head>
<body>
<h1>{{.Config.DeviceName}}</h1>

<h2>Connectivity</h2>
<table>
<tr><th>State</th><td class="{{stateClass (stateOrUnknown (printf "%s" .State))}}">{{stateOrUnknown (printf "%s" .State)}}</td></tr>
{{if .Link.SSID}}<tr><th>SSID</th><td>{{.Link.SSID}}</td></tr>{{end}}
{{if .Link.IP}}<tr><th>IP</th><td>{{.Link.IP}}</td></tr>
<tr><th>MAC</th><td>{{.Link.MAC}}</td></tr>
<tr><th>Signal</th><td>{{.Link.RSSI}} dBm</td></tr>{{end}}
<tr><th>Reconnect attempts</th><td>{{.Attempts}}</td></tr>
<tr><th>LED</th><td>{{.LED}}</td></tr>
</table>

<h2>Transitions</h2>
<table>
<tr><th>CONNECTING</th><td>{{.Counts.Connecting}}</td></tr>
<tr><th>CONNECTED</th><td>{{.Counts.Connected}}</td></tr>
<tr><th>DISCONNECTED</th><td>{{.Counts.Disconnected}}</td></tr>
<tr><th>ERROR</th><td>{{.Counts.Errors}}</td></tr>
</table>
{{if .History}}
<h2>History</h2>
<table>
{{range .History}}<tr><th>{{.At.UTC.Format "15:04:05"}}</th><td class="{{stateClass (printf "%s" .To)}}">{{.To}}</td></tr>
{{end}}</table>
{{end}}
<h2>System</h2>
<table>
<tr><th>Device</th><td>{{.Config.DeviceID}}</td></tr>
<tr><th>Interface</th><td>{{.Config.Interface}}</td></tr>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Poll</th><td>{{.Config.PollMs}}ms</td></tr>
<tr><th>Connect timeout</th><td>{{.Config.TimeoutMs}}ms</td></tr>
<tr><th>Reconnect delay</th><td>{{.Config.BackoffMs}}ms</td></tr>
<tr><th>Heartbeat</th><td>{{if le .Config.HeartbeatMs 0}}disabled{{else}}{{.Config.HeartbeatMs}}ms{{end}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	// Snapshot has Uptime() method but template needs a Duration field.
	data := struct {
		status.Snapshot
		Uptime time.Duration
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
	}
	indexTmpl.Execute(w, data)
}
