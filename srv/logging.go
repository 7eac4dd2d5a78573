package srv

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/coreos/go-systemd/journal"
	"github.com/nwidger/jsoncolor"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/level"
	"github.com/tychoish/grip/message"
	"github.com/tychoish/grip/send"
	"github.com/tychoish/grip/x/system"

	"github.com/tychoish/itemq/global"
)

type LoggingSettings struct {
	DisableStandardOutput     bool           `bson:"disable_standard_output" json:"disable_standard_output" yaml:"disable_standard_output"`
	EnableJSONFormating       bool           `bson:"enable_json_formatting" json:"enable_json_formatting" yaml:"enable_json_formatting"`
	EnableJSONColorFormatting bool           `bson:"enable_json_color_formatting" json:"enable_json_color_formatting" yaml:"enable_json_color_formatting"`
	DisableSyslog             bool           `bson:"disable_syslog" json:"disable_syslog" yaml:"disable_syslog"`
	Priority                  level.Priority `bson:"priority" json:"priority" yaml:"priority"`
}

// Join overrides settings with the non-zero values of mc.
func (conf *LoggingSettings) Join(mc *LoggingSettings) {
	if mc == nil {
		return
	}

	conf.DisableStandardOutput = conf.DisableStandardOutput || mc.DisableStandardOutput
	conf.EnableJSONFormating = conf.EnableJSONFormating || mc.EnableJSONFormating
	conf.EnableJSONColorFormatting = conf.EnableJSONColorFormatting || mc.EnableJSONColorFormatting
	conf.DisableSyslog = conf.DisableSyslog || mc.DisableSyslog
	if mc.Priority != level.Invalid {
		conf.Priority = mc.Priority
	}
}

func WithAppLogger(ctx context.Context, conf LoggingSettings) context.Context {
	sender := SetupLogging(conf)
	grip.SetSender(sender)
	return grip.WithLogger(ctx, grip.NewLogger(sender))
}

func SetupLogging(conf LoggingSettings) send.Sender {
	var sender send.Sender

	if conf.EnableJSONFormating || conf.EnableJSONColorFormatting {
		sender = send.MakePlain()
	} else {
		sender = send.MakeStdError()
	}

	if runtime.GOOS == "linux" && !conf.DisableSyslog && journal.Enabled() {
		syslog := system.MakeDefault()
		syslog.SetName(global.ApplicationName)

		if conf.DisableStandardOutput {
			sender = syslog
		} else {
			sender = send.MakeMulti(syslog, sender)
		}
	}

	switch {
	case conf.EnableJSONColorFormatting:
		sender.SetFormatter(func(m message.Composer) (string, error) {
			out, err := jsoncolor.Marshal(m.Raw())
			if err != nil {
				return "", err
			}
			return string(out), nil
		})
	case conf.EnableJSONFormating:
		sender.SetFormatter(send.MakeJSONFormatter())
	}

	if conf.Priority == level.Invalid {
		conf.Priority = level.Info
	}

	sender.SetPriority(conf.Priority)
	sender.SetName(filepath.Base(os.Args[0]))

	return sender
}
