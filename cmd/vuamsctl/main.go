// vuamsctl performs one operation against a VU-AMS device connected through
// the AMS USB infrared bridge.
//
// Exactly one operation flag must be given per invocation. Query results are
// printed to stdout as "<port>,<value>"; everything else goes to the log on
// stderr. The exit code is 1 when no port can be determined or the device
// cannot be reached, 0 otherwise — a query that merely timed out still exits
// 0 and prints the absence.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/moffa90/go-vuams/ams"
	"github.com/moffa90/go-vuams/internal/config"
	"github.com/moffa90/go-vuams/internal/logging"
	"github.com/moffa90/go-vuams/transport"
)

// noData is what a timed-out query prints in place of a value.
const noData = "no data"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = flag.String("config", "", "path to config file (optional)")
		port       = flag.String("port", "", "serial port (e.g. COM5); discovered automatically when empty")

		devicePresent  = flag.Bool("device-present", false, "check if the device is present")
		label          = flag.Bool("label", false, "print the device label (serial number)")
		status         = flag.Bool("status", false, "print the device status")
		statusInteger  = flag.Bool("status-integer", false, "print the device status as an integer")
		syncTime       = flag.Bool("sync-time", false, "set the device clock to system time")
		startRecording = flag.Bool("start-recording", false, "start recording")
		stopRecording  = flag.Bool("stop-recording", false, "stop recording")
		sendMarker     = flag.String("send-marker", "", "send marker `TEXT`")
	)
	flag.Parse()

	// An explicitly empty marker is still a marker operation.
	markerSet := flagPassed(flag.CommandLine, "send-marker")

	selected := 0
	for _, on := range []bool{
		*devicePresent, *label, *status, *statusInteger,
		*syncTime, *startRecording, *stopRecording, markerSet,
	} {
		if on {
			selected++
		}
	}
	if selected != 1 {
		fmt.Fprintln(os.Stderr, "exactly one operation must be specified")
		flag.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	logger, err := logging.InitLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging error:", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	// An interrupt cancels the in-flight wait; the operation then reads as
	// "no data" rather than crashing mid-exchange.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	portName := *port
	if portName == "" {
		portName = cfg.Serial.Port
	}
	if portName == "" {
		ports, err := transport.ListPorts()
		if err != nil {
			logger.Error("port enumeration failed", zap.Error(err))
			return 1
		}
		name, ok := transport.FindDevicePort(ports, logger)
		if !ok {
			fmt.Fprintln(os.Stderr, "could not find a compatible device port automatically")
			return 1
		}
		portName = name
	}

	dev := ams.New(portName,
		ams.WithLogger(logger),
		ams.WithBaudRate(cfg.Serial.BaudRate),
		ams.WithResponseTimeout(cfg.Serial.ResponseTimeout),
		ams.WithPollInterval(cfg.Serial.PollInterval),
	)
	if err := dev.Connect(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to the device:", err)
		return 1
	}
	defer func() { _ = dev.Disconnect() }()

	switch {
	case *devicePresent:
		present, err := dev.Present(ctx)
		if err != nil {
			logger.Error("presence check failed", zap.Error(err))
			present = false
		}
		fmt.Printf("%s,%t\n", portName, present)

	case *label:
		value, err := dev.Label(ctx)
		fmt.Printf("%s,%s\n", portName, queryValue(value, err, logger))

	case *status:
		st, err := dev.Status(ctx)
		fmt.Printf("%s,%s\n", portName, queryValue(st.String(), err, logger))

	case *statusInteger:
		st, err := dev.Status(ctx)
		fmt.Printf("%s,%s\n", portName, queryValue(fmt.Sprintf("%d", byte(st)), err, logger))

	case *syncTime:
		if err := dev.SyncTime(ctx); err != nil {
			logger.Warn("time sync unacknowledged", zap.Error(err))
		}

	case *startRecording:
		if err := dev.StartRecording(ctx); err != nil {
			logger.Warn("start recording unacknowledged", zap.Error(err))
		}

	case *stopRecording:
		if err := dev.StopRecording(ctx); err != nil {
			logger.Warn("stop recording unacknowledged", zap.Error(err))
		}

	case markerSet:
		if err := dev.SendMarker(*sendMarker); err != nil {
			logger.Error("marker send failed", zap.Error(err))
		}
	}

	return 0
}

// flagPassed reports whether the named flag appeared on the command line,
// regardless of the value it was given.
func flagPassed(fs *flag.FlagSet, name string) bool {
	passed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

// queryValue maps a query result to its printable form: the value on
// success, "no data" on a timeout, and "no data" with a logged cause on a
// decode failure.
func queryValue(value string, err error, logger *zap.Logger) string {
	if err == nil {
		return value
	}
	if !errors.Is(err, transport.ErrNoData) {
		logger.Error("query failed", zap.Error(err))
	}
	return noData
}
