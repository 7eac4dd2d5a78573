package srv

import (
	"context"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/level"
)

func TestSetupLogging(t *testing.T) {
	t.Run("DefaultPriority", func(t *testing.T) {
		sender := SetupLogging(LoggingSettings{DisableSyslog: true})
		assert.Equal(t, sender.Priority(), level.Info)
	})
	t.Run("ExplicitPriority", func(t *testing.T) {
		sender := SetupLogging(LoggingSettings{DisableSyslog: true, Priority: level.Debug})
		assert.Equal(t, sender.Priority(), level.Debug)
	})
	t.Run("JSON", func(t *testing.T) {
		sender := SetupLogging(LoggingSettings{DisableSyslog: true, EnableJSONFormating: true, Priority: level.Warning})
		assert.Equal(t, sender.Priority(), level.Warning)
	})
}

func TestWithAppLogger(t *testing.T) {
	root := grip.Sender()
	defer grip.SetSender(root)

	ctx := WithAppLogger(context.Background(), LoggingSettings{DisableSyslog: true, Priority: level.Notice})
	check.Equal(t, grip.Context(ctx).Sender().Priority(), level.Notice)
	check.Equal(t, grip.Sender().Priority(), level.Notice)
}

func TestLoggingSettingsJoin(t *testing.T) {
	conf := LoggingSettings{Priority: level.Info}
	conf.Join(&LoggingSettings{EnableJSONFormating: true, Priority: level.Debug})
	check.True(t, conf.EnableJSONFormating)
	check.Equal(t, conf.Priority, level.Debug)

	conf.Join(&LoggingSettings{})
	check.Equal(t, conf.Priority, level.Debug)
	conf.Join(nil)
	check.True(t, !conf.DisableSyslog)
}
