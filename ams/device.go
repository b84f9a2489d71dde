package ams

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/moffa90/go-vuams/protocol"
	"github.com/moffa90/go-vuams/transport"
)

// Device is the stateful handle for one VU-AMS monitor on one serial port.
// It is Disconnected at birth; Connect opens the transport and verifies the
// device's presence signature before any other operation is allowed.
//
// Device is not safe for concurrent use; see the package documentation.
type Device struct {
	portName  string
	cfg       Config
	log       *zap.Logger
	transport Transport
	connected bool
}

// New creates a Device for the named serial port. The Device starts
// Disconnected; no I/O happens until Connect.
//
// Example:
//
//	dev := ams.New("COM5",
//	    ams.WithLogger(logger),
//	    ams.WithResponseTimeout(5*time.Second),
//	)
func New(portName string, opts ...Option) *Device {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Device{
		portName: portName,
		cfg:      cfg,
		log:      cfg.Logger,
	}
}

// Connected reports whether the device has an open, presence-verified
// session.
func (d *Device) Connected() bool {
	return d.connected
}

// Connect opens the serial transport and immediately requires the device's
// presence signature. On any failure — port acquisition, write, timeout, or
// wrong signature — the transport is closed again and the Device stays
// Disconnected. Connecting an already connected Device is a no-op.
func (d *Device) Connect(ctx context.Context) error {
	if d.connected {
		return nil
	}

	tr, err := d.open()
	if err != nil {
		return &ConnectError{Port: d.portName, Err: err}
	}
	d.transport = tr

	present, err := d.probe(ctx)
	if err != nil || !present {
		_ = d.Disconnect()
		if err == nil {
			err = ErrDeviceNotPresent
		}
		d.log.Warn("connect failed", zap.String("port", d.portName), zap.Error(err))
		return &ConnectError{Port: d.portName, Err: err}
	}

	d.connected = true
	d.log.Info("device connected", zap.String("port", d.portName))
	return nil
}

// Disconnect closes the transport unconditionally and marks the Device
// Disconnected. It is idempotent and safe to call on a never-connected
// Device.
func (d *Device) Disconnect() error {
	d.connected = false
	if d.transport == nil {
		return nil
	}
	err := d.transport.Close()
	d.transport = nil
	d.log.Info("device disconnected", zap.String("port", d.portName))
	return err
}

// Present asks the device for its presence signature. A timeout reads as
// (false, nil): the device is simply not there.
func (d *Device) Present(ctx context.Context) (bool, error) {
	if !d.connected {
		return false, ErrNotConnected
	}
	return d.probe(ctx)
}

// GetParameter issues the generic get-parameter request and returns the raw
// response frame. It is exported for parameter codes the facade does not
// wrap (protocol.ParamBatteryVoltage, protocol.ParamFirmwareVersion), whose
// payload layouts are undocumented. A timeout surfaces as
// transport.ErrNoData.
func (d *Device) GetParameter(ctx context.Context, param byte) ([]byte, error) {
	if !d.connected {
		return nil, ErrNotConnected
	}
	return d.exchange(ctx, protocol.BuildParameterRequest(param))
}

// Status queries the device status. The human-readable label form is
// available via the Status String method.
func (d *Device) Status(ctx context.Context) (protocol.Status, error) {
	resp, err := d.GetParameter(ctx, protocol.ParamStatus)
	if err != nil {
		return 0, err
	}
	return protocol.DecodeStatus(resp)
}

// Label queries the device label (serial number).
func (d *Device) Label(ctx context.Context) (string, error) {
	resp, err := d.GetParameter(ctx, protocol.ParamLabel)
	if err != nil {
		return "", err
	}
	return protocol.DecodeLabel(resp)
}

// SyncTime sets the device clock to the current local wall-clock time.
// Success means only that the device answered before the deadline; the
// reply does not semantically acknowledge the new clock value.
func (d *Device) SyncTime(ctx context.Context) error {
	if !d.connected {
		return ErrNotConnected
	}
	_, err := d.exchange(ctx, protocol.BuildTimeSyncRequest(time.Now()))
	return err
}

// StartRecording starts a recording on the device. Success means the device
// answered before the deadline.
func (d *Device) StartRecording(ctx context.Context) error {
	return d.command(ctx, protocol.CmdStartRecording)
}

// StopRecording stops the current recording. Success means the device
// answered before the deadline.
func (d *Device) StopRecording(ctx context.Context) error {
	return d.command(ctx, protocol.CmdStopRecording)
}

// SendMarker writes a marker annotation into the device's own recording
// stream. The device sends no reply to markers, so the call is
// fire-and-forget: it returns as soon as the frame is written.
func (d *Device) SendMarker(text string) error {
	if !d.connected {
		return ErrNotConnected
	}
	d.log.Info("sending marker", zap.String("text", protocol.NormalizeMarkerText(text)))
	return d.transport.Write(protocol.BuildMarkerRequest(text))
}

// probe issues the presence request on the open transport. A timeout reads
// as (false, nil); only a write failure is an error.
func (d *Device) probe(ctx context.Context) (bool, error) {
	resp, err := d.exchange(ctx, protocol.BuildParameterRequest(protocol.ParamPresence))
	if err != nil {
		if errors.Is(err, transport.ErrNoData) {
			return false, nil
		}
		return false, err
	}
	return protocol.IsPresenceConfirmation(resp), nil
}

// command sends a device command and waits for any response.
func (d *Device) command(ctx context.Context, cmd byte) error {
	if !d.connected {
		return ErrNotConnected
	}
	_, err := d.exchange(ctx, protocol.BuildCommandRequest(cmd))
	return err
}

// exchange is the one-outstanding-request primitive: write the frame, then
// poll for whatever the device sends back.
func (d *Device) exchange(ctx context.Context, frame []byte) ([]byte, error) {
	if err := d.transport.Write(frame); err != nil {
		return nil, err
	}
	return d.transport.PollRead(ctx)
}

// open acquires the transport, via the configured Opener when one is set.
func (d *Device) open() (Transport, error) {
	if d.cfg.Opener != nil {
		return d.cfg.Opener(d.portName)
	}
	sess, err := transport.Open(d.portName,
		transport.WithLogger(d.log),
		transport.WithBaudRate(d.cfg.BaudRate),
		transport.WithResponseTimeout(d.cfg.ResponseTimeout),
		transport.WithPollInterval(d.cfg.PollInterval),
	)
	if err != nil {
		return nil, err
	}
	return sess, nil
}
