// Command uebot joins the configured WiFi network, keeps the link up,
// and signals connectivity on the status LED.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"github.com/DuongThanhTaii/UE-Bot/internal/clock"
	"github.com/DuongThanhTaii/UE-Bot/internal/config"
	"github.com/DuongThanhTaii/UE-Bot/internal/led"
	"github.com/DuongThanhTaii/UE-Bot/internal/status"
	"github.com/DuongThanhTaii/UE-Bot/internal/web"
	"github.com/DuongThanhTaii/UE-Bot/internal/wifi"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "YAML config file")
	ssid := flag.String("ssid", "", "WiFi network name (overrides config)")
	password := flag.String("password", "", "WiFi passphrase (overrides config)")
	httpAddr := flag.String("http", "", `HTTP status address (overrides config, "off" to disable)`)
	printState := flag.Bool("print-state", false, "Print current link state and exit")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}

	// Flags the user actually passed win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ssid":
			cfg.Wifi.SSID = *ssid
		case "password":
			cfg.Wifi.Password = *password
		case "http":
			cfg.HTTPAddr = *httpAddr
		}
	})
	config.Normalize(cfg)

	if err := run(cfg, *printState); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(cfg *config.Config, printState bool) error {
	clk := clock.New()
	adapter := wifi.NewWPAAdapter(cfg.Wifi.Interface, clk)

	// Print state mode
	if printState {
		return printLinkState(adapter)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	printBanner(cfg)

	// Initialize LED
	line, err := led.NewLine(cfg.LED.Driver, cfg.LED.Chip, cfg.LED.Pin, cfg.LED.Name)
	if err != nil {
		return err
	}
	indicator := led.NewIndicator(line, clk, timingsFor(cfg), cfg.LED.ActiveLow)
	if err := indicator.Initialize(); err != nil {
		return fmt.Errorf("init led: %w", err)
	}
	defer indicator.Close()

	manager := wifi.NewManager(adapter, clk, wifi.Config{
		ConnectTimeout:     cfg.ConnectTimeout(),
		ReconnectBackoff:   cfg.ReconnectBackoff(),
		StatusPollInterval: cfg.StatusPollInterval(),
	})

	// Initialize status tracker (before the first connect so the page
	// is available while it blocks)
	tracker := status.NewTracker(time.Now(), status.Config{
		DeviceID:    cfg.Device.ID,
		DeviceName:  cfg.Device.Name,
		PollMs:      int64(cfg.PollMs),
		HeartbeatMs: int64(cfg.HeartbeatMs),
		TimeoutMs:   int64(cfg.Wifi.TimeoutMs),
		BackoffMs:   int64(cfg.Wifi.ReconnectDelayMs),
		Interface:   cfg.Wifi.Interface,
		HTTPAddr:    cfg.HTTPAddr,
	})

	manager.SetStateHandler(func(s wifi.State) {
		log.Printf("wifi state: %s", s)
		indicator.SetPattern(patternFor(s))
		tracker.RecordTransition(clk.Now(), s)
	})

	// Start HTTP status server
	if cfg.HTTPAddr != "" {
		srv := web.New(cfg.HTTPAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", cfg.HTTPAddr)
	}

	indicator.SetPattern(led.BlinkSlow)

	// The first connect blocks up to the connect timeout. Failure is
	// not fatal; the loop keeps retrying.
	if err := manager.Initialize(cfg.Wifi.SSID, cfg.Wifi.Password); err != nil {
		log.Printf("initial connect: %v", err)
	} else {
		log.Printf("device info: mac=%s ip=%s rssi=%ddBm",
			manager.HardwareAddress(), manager.LocalAddress(), manager.SignalStrength())
		tracker.SetLink(linkInfo(cfg.Wifi.SSID, manager))
	}

	notifyReady()

	log.Printf("started: poll=%v heartbeat=%v interface=%s",
		cfg.PollInterval(), cfg.HeartbeatInterval(), cfg.Wifi.Interface)

	ticker := time.NewTicker(cfg.PollInterval())
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(manager, indicator, tracker, cfg.Wifi.SSID,
		cfg.HeartbeatInterval(), watchdogInterval(), notifyWatchdog,
		time.Now, ticker.C, sigCh)
}

func runLoop(manager *wifi.Manager, indicator *led.Indicator, tracker *status.Tracker,
	ssid string, heartbeat, watchdog time.Duration, petWatchdog func(),
	now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {

	startTime := now()
	lastHeartbeat := startTime
	lastPet := startTime

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			manager.Disconnect()
			indicator.Off()
			return nil

		case <-tick:
			t := now()

			manager.Poll()
			indicator.Poll()

			// TODO: drive the WebSocket client and audio capture from
			// this loop once the voice pipeline lands.

			if heartbeat > 0 && t.Sub(lastHeartbeat) >= heartbeat {
				lastHeartbeat = t
				log.Printf("heartbeat: uptime=%v state=%s attempts=%d",
					t.Sub(startTime).Truncate(time.Second), manager.State(), manager.Attempts())
				tracker.SetLink(linkInfo(ssid, manager))
			}

			if watchdog > 0 && t.Sub(lastPet) >= watchdog {
				lastPet = t
				petWatchdog()
			}

			// Update status tracker for HTTP consumers
			tracker.Update(manager.State(), manager.Attempts(), indicator.Pattern())
		}
	}
}

// timingsFor merges config overrides over the stock pattern intervals.
func timingsFor(cfg *config.Config) led.Timings {
	t := led.DefaultTimings()
	tc := cfg.LED.Timings
	if tc.BlinkSlowMs > 0 {
		t.BlinkSlow = time.Duration(tc.BlinkSlowMs) * time.Millisecond
	}
	if tc.BlinkFastMs > 0 {
		t.BlinkFast = time.Duration(tc.BlinkFastMs) * time.Millisecond
	}
	if tc.PulseMs > 0 {
		t.Pulse = time.Duration(tc.PulseMs) * time.Millisecond
	}
	if tc.DoubleBlinkPulseMs > 0 {
		t.DoubleBlinkPulse = time.Duration(tc.DoubleBlinkPulseMs) * time.Millisecond
	}
	if tc.DoubleBlinkPauseMs > 0 {
		t.DoubleBlinkPause = time.Duration(tc.DoubleBlinkPauseMs) * time.Millisecond
	}
	return t
}

// patternFor maps connectivity states to LED patterns.
func patternFor(s wifi.State) led.Pattern {
	switch s {
	case wifi.StateConnecting:
		return led.BlinkFast
	case wifi.StateConnected:
		return led.On
	case wifi.StateError:
		return led.DoubleBlink
	default:
		return led.BlinkSlow
	}
}

func linkInfo(ssid string, m *wifi.Manager) status.LinkInfo {
	if !m.IsConnected() {
		return status.LinkInfo{SSID: ssid}
	}
	return status.LinkInfo{
		SSID: ssid,
		IP:   m.LocalAddress(),
		MAC:  m.HardwareAddress(),
		RSSI: m.SignalStrength(),
	}
}

func printBanner(cfg *config.Config) {
	fmt.Println("==========================")
	fmt.Printf("  %s\n", cfg.Device.Name)
	fmt.Println("==========================")
	fmt.Printf("device id: %s\n", cfg.Device.ID)
	fmt.Printf("version: %s\n", version)
}

func printLinkState(adapter *wifi.WPAAdapter) error {
	ok, err := adapter.Status()
	if err != nil {
		return fmt.Errorf("query link: %w", err)
	}
	if !ok {
		fmt.Println("disconnected")
		return nil
	}
	fmt.Printf("connected: ip=%s mac=%s rssi=%ddBm\n",
		adapter.LocalAddress(), adapter.HardwareAddress(), adapter.SignalStrength())
	return nil
}

// notifyReady tells systemd the service is up. Harmless when not
// running under systemd.
func notifyReady() {
	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Printf("sd_notify: %v", err)
	}
}

// watchdogInterval returns half the systemd WatchdogSec, or 0 when no
// watchdog is configured.
func watchdogInterval() time.Duration {
	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil || interval == 0 {
		return 0
	}
	return interval / 2
}

func notifyWatchdog() {
	if _, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog); err != nil {
		log.Printf("sd_notify: %v", err)
	}
}
