// internal/config/normalize.go
package config

// Normalize fills unset fields with deployment defaults. It is allowed to
// mutate configuration and MUST be called before Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	lg := &cfg.Logger

	if lg.Instrument.Port == "" {
		lg.Instrument.Port = "/dev/ttyUSB0"
	}
	if lg.Instrument.BaudRate == 0 {
		lg.Instrument.BaudRate = 115200
	}
	if lg.Instrument.TimeoutMs == 0 {
		lg.Instrument.TimeoutMs = 3000
	}
	if lg.Instrument.Channels == "" {
		lg.Instrument.Channels = "101:113"
	}
	if lg.Instrument.Function == "" {
		lg.Instrument.Function = "RES"
	}
	if lg.Instrument.Range == "" {
		lg.Instrument.Range = "AUTO"
	}
	if lg.Instrument.Resolution == "" {
		lg.Instrument.Resolution = "DEF"
	}
	if lg.Instrument.NPLC == 0 {
		lg.Instrument.NPLC = 1
	}

	if lg.Poll.IntervalMs == 0 {
		lg.Poll.IntervalMs = 1000
	}

	if lg.Fault.Threshold == 0 {
		lg.Fault.Threshold = 1.0e+37
	}
	if lg.Fault.Sentinel == 0 {
		lg.Fault.Sentinel = 9.9e+37
	}

	if lg.Reconnect.MaxAttempts == 0 {
		lg.Reconnect.MaxAttempts = 5
	}
	if lg.Reconnect.InitialBackoffMs == 0 {
		lg.Reconnect.InitialBackoffMs = 1000
	}
	if lg.Reconnect.MaxBackoffMs == 0 {
		lg.Reconnect.MaxBackoffMs = 30000
	}

	if lg.Alert.Enabled == nil {
		on := true
		lg.Alert.Enabled = &on
	}
	if lg.Alert.Beep == nil {
		on := true
		lg.Alert.Beep = &on
	}
	if lg.Alert.DisplayText == "" {
		lg.Alert.DisplayText = "[ CAUTION ]\nCHANNEL FAULT"
	}

	if lg.MQTT.Server == "" {
		lg.MQTT.Server = "tcp://localhost:1883"
	}
	if lg.MQTT.ClientID == "" {
		lg.MQTT.ClientID = "healthlogger"
	}
	if lg.MQTT.Topic == "" {
		lg.MQTT.Topic = "healthlogger/scan"
	}
}
