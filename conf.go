package itemq

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/tychoish/fun/erc"
	"github.com/tychoish/fun/ers"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/level"
	"github.com/tychoish/grip/message"

	"github.com/tychoish/itemq/queue"
	"github.com/tychoish/itemq/srv"
	"github.com/tychoish/itemq/units"
	"github.com/tychoish/itemq/util"
)

const ErrInvalidConfiguration ers.Error = "invalid configuration"

// ListingAuto selects the table listing when standard output is a
// terminal and the plain listing otherwise.
const ListingAuto = "auto"

const DefaultItemCount = 55

type Configuration struct {
	Items            int                 `bson:"items" json:"items" yaml:"items"`
	Seed             uint64              `bson:"seed" json:"seed" yaml:"seed"`
	ReducerInterval  time.Duration       `bson:"reducer_interval" json:"reducer_interval" yaml:"reducer_interval"`
	ListerInterval   time.Duration       `bson:"lister_interval" json:"lister_interval" yaml:"lister_interval"`
	ThinningInterval time.Duration       `bson:"thinning_interval" json:"thinning_interval" yaml:"thinning_interval"`
	Listing          string              `bson:"listing" json:"listing" yaml:"listing"`
	Logging          srv.LoggingSettings `bson:"logging" json:"logging" yaml:"logging"`
}

func DefaultConfiguration() *Configuration {
	iv := units.DefaultIntervals()
	return &Configuration{
		Items:            DefaultItemCount,
		ReducerInterval:  iv.Reducer,
		ListerInterval:   iv.Lister,
		ThinningInterval: iv.Thinning,
		Listing:          string(queue.ListingPlain),
		Logging:          srv.LoggingSettings{Priority: level.Info},
	}
}

// LoadConfiguration reads the file at fn over the defaults. An empty
// path, or a path that does not exist, yields the defaults.
func LoadConfiguration(fn string) (*Configuration, error) {
	conf := DefaultConfiguration()

	fn = util.TryExpandHomeDir(fn)
	if fn == "" || !util.FileExists(fn) {
		grip.Debug(message.Fields{
			"op":   "load configuration",
			"path": fn,
			"msg":  "no configuration file, using defaults",
		})
		return conf, nil
	}

	file := &Configuration{}
	if err := util.UnmarshalFile(fn, file); err != nil {
		return nil, err
	}

	conf.Join(file)

	return conf, nil
}

// Join overrides the configuration with the non-zero values of mc.
func (conf *Configuration) Join(mc *Configuration) {
	if mc == nil {
		return
	}

	conf.Items = util.Default(mc.Items, conf.Items)
	conf.Seed = util.Default(mc.Seed, conf.Seed)
	conf.ReducerInterval = util.Default(mc.ReducerInterval, conf.ReducerInterval)
	conf.ListerInterval = util.Default(mc.ListerInterval, conf.ListerInterval)
	conf.ThinningInterval = util.Default(mc.ThinningInterval, conf.ThinningInterval)
	conf.Listing = util.Default(mc.Listing, conf.Listing)
	conf.Logging.Join(&mc.Logging)
}

func (conf *Configuration) Validate() error {
	conf.Listing = util.Default(conf.Listing, string(queue.ListingPlain))

	ec := &erc.Collector{}
	ec.If(conf.Items < 0, ers.Wrapf(ErrInvalidConfiguration, "item count %d is negative", conf.Items))
	ec.If(conf.ReducerInterval < 0, ers.Wrapf(ErrInvalidConfiguration, "reducer interval %s is negative", conf.ReducerInterval))
	ec.If(conf.ListerInterval < 0, ers.Wrapf(ErrInvalidConfiguration, "lister interval %s is negative", conf.ListerInterval))
	ec.If(conf.ThinningInterval < 0, ers.Wrapf(ErrInvalidConfiguration, "thinning interval %s is negative", conf.ThinningInterval))
	if conf.Listing != ListingAuto {
		ec.Push(queue.ListingFormat(conf.Listing).Validate())
	}

	return ec.Resolve()
}

// DisablePacing removes the delays between worker iterations.
func (conf *Configuration) DisablePacing() {
	conf.ReducerInterval = 0
	conf.ListerInterval = 0
	conf.ThinningInterval = 0
}

func (conf *Configuration) Intervals() units.Intervals {
	return units.Intervals{
		Reducer:  conf.ReducerInterval,
		Lister:   conf.ListerInterval,
		Thinning: conf.ThinningInterval,
	}
}

// Random returns a generator for one consumer of randomness. Distinct
// streams of a seeded configuration are independent but reproducible.
func (conf *Configuration) Random(stream uint64) *rand.Rand {
	if conf.Seed == 0 {
		return queue.NewRandom(0)
	}
	return rand.New(rand.NewPCG(conf.Seed, stream))
}

func (conf *Configuration) ListingFormat() queue.ListingFormat {
	if conf.Listing != ListingAuto {
		return queue.ListingFormat(conf.Listing)
	}

	if util.IsTerminal(os.Stdout) {
		return queue.ListingTable
	}
	return queue.ListingPlain
}
