package main

import (
	"os"
	"strconv"

	log "github.com/ChainSafe/log15"
	"github.com/urfave/cli/v2"

	"github.com/evmlabs/walletd/config"
)

var app = cli.NewApp()

var cliFlags = []cli.Flag{
	config.ConfigFileFlag,
	config.VerbosityFlag,
	config.KeystorePathFlag,
	config.PortFlag,
	config.MetricsFlag,
}

var accountFlags = []cli.Flag{
	config.PrivateKeyFlag,
	config.PasswordFlag,
	config.KeystorePathFlag,
}

var accountCommand = cli.Command{
	Name:  "accounts",
	Usage: "manage operator keystore",
	Description: "The accounts command is used to manage the walletd keystore.\n" +
		"\tTo generate a new key: walletd accounts generate\n" +
		"\tTo import a private key: walletd accounts import --privateKey private_key",
	Subcommands: []*cli.Command{
		{
			Action: wrapHandler(handleGenerateCmd),
			Name:   "generate",
			Usage:  "generate keystore",
			Flags:  accountFlags,
			Description: "The generate subcommand is used to generate a new keystore.\n" +
				"\tThe key file is written to the keystore directory.",
		},
		{
			Action: wrapHandler(handleImportCmd),
			Name:   "import",
			Usage:  "import keystore",
			Flags:  accountFlags,
			Description: "The import subcommand is used to import a keystore.\n" +
				"\tUse --privateKey to create a keystore from a provided private key.",
		},
	},
}

var serverCommand = cli.Command{
	Name:        "server",
	Usage:       "run the wallet API daemon",
	Description: "The server command runs the REST API, the postgres pool and the EVM client.",
	Action:      server,
	Subcommands: []*cli.Command{},
	Flags:       append(app.Flags, cliFlags...),
}

var configCommand = cli.Command{
	Name:  "config",
	Usage: "inspect the network/asset registry",
	Subcommands: []*cli.Command{
		{
			Action:      configCheck,
			Name:        "check",
			Usage:       "validate the registry and print its contents",
			Flags:       []cli.Flag{config.ConfigFileFlag},
			Description: "The check subcommand loads the registry, validates it and prints the networks and assets.",
		},
	},
}

var (
	Version = "1.0.0"
)

// init initializes CLI
func init() {
	app.Name = "walletd"
	app.Usage = "Walletd"
	app.Version = Version
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		&serverCommand,
		&accountCommand,
		&configCommand,
	}

	app.Flags = append(app.Flags, cliFlags...)
}

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startLogger(ctx *cli.Context) error {
	logger := log.Root()
	handler := logger.GetHandler()
	var lvl log.Lvl

	if lvlToInt, err := strconv.Atoi(ctx.String(config.VerbosityFlag.Name)); err == nil {
		lvl = log.Lvl(lvlToInt)
	} else if lvl, err = log.LvlFromString(ctx.String(config.VerbosityFlag.Name)); err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, handler))

	return nil
}
