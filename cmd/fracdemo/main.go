package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aatomu/fraction/internal/demo"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:  "fracdemo",
	Usage: "print sample fraction operations",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			EnvVars: []string{"FRACDEMO_LOG_LEVEL"},
		},
	},
	Commands: cli.Commands{
		// fracdemo run --config demo.toml
		&cli.Command{
			Name:  "run",
			Usage: "print arithmetic, mixed number and comparison samples",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "config",
					Aliases: []string{"c"},
					Usage:   "TOML file with left, right, mixed and compare pairs",
				},
			},
			Action: func(c *cli.Context) error {
				cfg, err := demo.LoadConfig(c.String("config"))
				if err != nil {
					return err
				}
				log, err := newLogger(c, cfg.LogLevel)
				if err != nil {
					return err
				}
				log.Debug().Str("config", c.String("config")).Msg("loaded")
				return demo.Run(os.Stdout, cfg, log)
			},
		},
		// fracdemo encode 1 2
		&cli.Command{
			Name:      "encode",
			Usage:     "print the msgpack encoding of a fraction as hex",
			ArgsUsage: "NUMERATOR DENOMINATOR",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return fmt.Errorf("encode: want 2 arguments, got %d", c.NArg())
				}
				num, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
				if err != nil {
					return err
				}
				den, err := strconv.ParseInt(c.Args().Get(1), 10, 64)
				if err != nil {
					return err
				}
				s, err := demo.Encode(num, den)
				if err != nil {
					return err
				}
				fmt.Println(s)
				return nil
			},
		},
	},
}

func newLogger(c *cli.Context, configLevel string) (zerolog.Logger, error) {
	name := configLevel
	if c.IsSet("log-level") {
		name = c.String("log-level")
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Logger(), nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
