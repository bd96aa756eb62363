package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/evmlabs/walletd/config"
)

// configCheck loads and validates the registry, then prints it.
func configCheck(ctx *cli.Context) error {
	path := ctx.String(config.ConfigFileFlag.Name)
	reg, err := config.Load(path)
	if err != nil {
		color.Red("config invalid: %v", err)
		return err
	}

	color.Green("config %s is valid", path)
	fmt.Printf("current network: %s\n", reg.CurrentNetwork)
	fmt.Printf("native asset:    %s\n", reg.NativeAsset)

	fmt.Println("\nnetworks:")
	for _, name := range reg.NetworkNames() {
		url, _ := reg.RPCURL(name)
		fmt.Printf("  %-12s %s\n", name, url)
	}

	fmt.Println("\nassets:")
	for _, symbol := range reg.AssetSymbols() {
		byNetwork, _ := reg.Asset(symbol)
		fmt.Printf("  %s\n", symbol)
		for _, name := range reg.NetworkNames() {
			if addr, ok := byNetwork[name]; ok {
				fmt.Printf("    %-12s %s\n", name, addr)
			}
		}
	}
	return nil
}
