package operations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tychoish/cmdr"
	"github.com/tychoish/itemq/global"
)

func Version() *cmdr.Commander {
	return cmdr.MakeCommander().
		SetName("version").
		Aliases("v").
		SetUsage("returns the version and build information of the binary").
		SetAction(func(ctx context.Context, cc *cli.Command) error {
			fmt.Println(strings.Join([]string{
				"name: " + global.ApplicationName,
				"build: " + global.BuildRevision(),
				"built: " + buildTime(),
				"version: " + cc.Root().Version,
			}, "\n"))

			return nil
		})
}

func buildTime() string {
	ts := global.BuildTime()
	if ts.IsZero() {
		return "<UNKNOWN>"
	}
	return ts.Format(time.RFC3339)
}
