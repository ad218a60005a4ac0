// internal/acquire/builder.go
package acquire

import (
	"io"
	"log"
	"time"

	"github.com/u1and0/HealthLogger/internal/acquire/scpi"
	"github.com/u1and0/HealthLogger/internal/config"
	"github.com/u1and0/HealthLogger/internal/emit"
)

// Build wires a Loop from validated configuration: an scpi session factory,
// the console emitter on w (stdout in production) and the optional MQTT
// sink. The loop owns the instrument session; the returned cleanup closes
// the emitters.
//
// No session is opened here. First contact with the instrument happens in
// Run, inside the retry budget, so a transiently absent device at boot does
// not kill an unattended deployment.
func Build(cfg config.Config, w io.Writer) (*Loop, func(), error) {
	lg := cfg.Logger

	chs, err := scpi.ExpandChannels(lg.Instrument.Channels)
	if err != nil {
		return nil, nil, err
	}

	scfg := scpi.Config{
		Port:       lg.Instrument.Port,
		BaudRate:   lg.Instrument.BaudRate,
		Timeout:    time.Duration(lg.Instrument.TimeoutMs) * time.Millisecond,
		Channels:   lg.Instrument.Channels,
		Function:   lg.Instrument.Function,
		Range:      lg.Instrument.Range,
		Resolution: lg.Instrument.Resolution,
		NPLC:       lg.Instrument.NPLC,
		AlarmLimit: lg.Fault.AlarmLimit,
	}

	// session factory: ONE attempt per call, identity logged on success
	factory := func() (Instrument, error) {
		s, err := scpi.Open(scfg)
		if err != nil {
			return nil, err
		}
		if idn, err := s.Identify(); err != nil {
			log.Printf("instrument identity unavailable: %v", err)
		} else {
			log.Printf("instrument: %s", idn)
		}
		return s, nil
	}

	emitters := emit.Multi{emit.NewConsole(w)}
	if lg.MQTT.Enabled {
		m, err := emit.NewMQTT(emit.MQTTOptions{
			Server:   lg.MQTT.Server,
			ClientID: lg.MQTT.ClientID,
			Topic:    lg.MQTT.Topic,
			Username: lg.MQTT.Username,
			Password: lg.MQTT.Password,
		})
		if err != nil {
			return nil, nil, err
		}
		emitters = append(emitters, m)
	}

	loop, err := New(Config{
		Channels:            len(chs),
		Interval:            time.Duration(lg.Poll.IntervalMs) * time.Millisecond,
		FaultThreshold:      lg.Fault.Threshold,
		SentinelFill:        lg.Fault.Sentinel,
		ReconnectAttempts:   lg.Reconnect.MaxAttempts,
		ReconnectBackoff:    time.Duration(lg.Reconnect.InitialBackoffMs) * time.Millisecond,
		ReconnectMaxBackoff: time.Duration(lg.Reconnect.MaxBackoffMs) * time.Millisecond,
		AlertEnabled:        lg.Alert.Enabled != nil && *lg.Alert.Enabled,
		AlertText:           lg.Alert.DisplayText,
		AlertBeep:           lg.Alert.Beep != nil && *lg.Alert.Beep,
	}, factory, emitters)
	if err != nil {
		_ = emitters.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := emitters.Close(); err != nil {
			log.Printf("emitter close: %v", err)
		}
	}
	return loop, cleanup, nil
}
