package operations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/tychoish/cmdr"
	"github.com/tychoish/fun/srv"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/level"
	"github.com/tychoish/itemq"
	"github.com/tychoish/itemq/global"
	srsrv "github.com/tychoish/itemq/srv"
	"github.com/tychoish/itemq/util"
)

const (
	flagConf         = "conf"
	flagLevel        = "level"
	flagJSONLog      = "jsonLog"
	flagColorJSONLog = "colorJsonLog"
	flagQuietStdOut  = "quietStdOut"
	flagQuietSyslog  = "quietSyslog"

	flagItems   = "items"
	flagSeed    = "seed"
	flagListing = "listing"
	flagFast    = "fast"
)

func ResolveConfiguration(ctx context.Context, cc *cli.Command) (*itemq.Configuration, error) {
	if itemq.HasAppConfiguration(ctx) {
		return itemq.AppConfiguration(ctx), nil
	}
	return LoadConfiguration(cc)
}

// LoadConfiguration reads the configuration file and applies the
// command line and environment overrides on top of it.
func LoadConfiguration(cc *cli.Command) (*itemq.Configuration, error) {
	conf, err := itemq.LoadConfiguration(cc.String(flagConf))
	if err != nil {
		return nil, err
	}

	if cc.IsSet(flagLevel) || conf.Logging.Priority == level.Invalid {
		conf.Logging.Priority = level.FromString(cc.String(flagLevel))
	}
	conf.Logging.DisableSyslog = conf.Logging.DisableSyslog || cc.Bool(flagQuietSyslog) || os.Getenv(global.EnvVarLogQuietSyslog) != ""
	conf.Logging.DisableStandardOutput = conf.Logging.DisableStandardOutput || cc.Bool(flagQuietStdOut) || os.Getenv(global.EnvVarLogQuietStdOut) != ""
	conf.Logging.EnableJSONFormating = conf.Logging.EnableJSONFormating || cc.Bool(flagJSONLog) || os.Getenv(global.EnvVarLogFormatJSON) != ""
	conf.Logging.EnableJSONColorFormatting = conf.Logging.EnableJSONColorFormatting || cc.Bool(flagColorJSONLog) || os.Getenv(global.EnvVarLogJSONColor) != ""

	if cc.IsSet(flagItems) {
		conf.Items = int(cc.Int(flagItems))
	}
	if cc.IsSet(flagSeed) {
		conf.Seed = cc.Uint64(flagSeed)
	}
	if cc.IsSet(flagListing) {
		conf.Listing = cc.String(flagListing)
	}
	if cc.Bool(flagFast) {
		conf.DisablePacing()
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// QueueOperationSpec resolves the configuration and attaches the logger
// and a fresh shared queue to the context of the action.
func QueueOperationSpec() *cmdr.OperationSpec[*itemq.Configuration] {
	return cmdr.SpecBuilder(ResolveConfiguration).
		SetMiddleware(
			func(ctx context.Context, conf *itemq.Configuration) context.Context {
				ctx = itemq.WithConfiguration(ctx, conf)
				ctx = srsrv.WithAppLogger(ctx, conf.Logging)
				ctx = itemq.WithQueue(ctx, conf)
				srv.AddCleanup(ctx, func(context.Context) error { return grip.Sender().Close() })
				return ctx
			})
}

func queueFlags() []cli.Flag {
	return []cli.Flag{
		cmdr.FlagBuilder(itemq.DefaultItemCount).
			SetName(flagItems, "n").
			SetUsage("number of random items to fill the queue with").
			SetValidate(func(in int) error {
				if in < 0 {
					return fmt.Errorf("item count %d must not be negative", in)
				}
				return nil
			}).Flag(),
		cmdr.FlagBuilder(uint64(0)).
			SetName(flagSeed).
			SetUsage("seed for the random generators; zero picks a random seed").
			Flag(),
		cmdr.FlagBuilder("plain").
			SetName(flagListing, "l").
			SetUsage("listing format: plain|table|json|auto").
			Flag(),
		cmdr.FlagBuilder(false).
			SetName(flagFast).
			SetUsage("run workers without pacing delays").
			Flag(),
	}
}

func Commander() *cmdr.Commander {
	return cmdr.MakeRootCommander().
		SetName(global.ApplicationName).
		SetUsage("concurrent work-queue demonstration").
		Flags(cmdr.FlagBuilder(false).SetName(flagJSONLog).SetUsage("format logs as json").Flag(),
			cmdr.FlagBuilder(false).SetName(flagColorJSONLog).SetUsage("colorized json logs").Flag(),
			cmdr.FlagBuilder(false).SetName(flagQuietStdOut).SetUsage("don't log to standard out").Flag(),
			cmdr.FlagBuilder(false).SetName(flagQuietSyslog, "qs").SetUsage("don't log to syslog").Flag(),
			cmdr.FlagBuilder(filepath.Join(util.GetHomeDir(), global.DefaultConfigFileName)).
				SetName(flagConf, "c").
				SetUsage("configuration file path; ignored when missing").
				Flag(),
			cmdr.FlagBuilder("info").
				SetName(flagLevel).
				SetUsage("specify logging threshold: emergency|alert|critical|error|warning|notice|info|debug").
				SetValidate(func(val string) error {
					priority := level.FromString(val)
					if priority == level.Invalid {
						return fmt.Errorf("%q is not a valid logging level", val)
					}
					grip.Sender().SetPriority(priority)
					return nil
				}).Flag()).
		Middleware(srv.WithCleanup).
		SetAction(func(ctx context.Context, cc *cli.Command) error {
			return cli.ShowAppHelp(cc)
		}).
		Subcommanders(
			Run(),
			List(),
			Version(),
		)
}
