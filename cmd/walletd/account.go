// Copyright 2021 Compass Systems
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChainSafe/chainbridge-utils/crypto/secp256k1"
	log "github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/evmlabs/walletd/config"
	"github.com/evmlabs/walletd/internal/evm"
	"github.com/evmlabs/walletd/keystore"
)

// dataHandler is a struct which wraps any extra data our CMD functions need that cannot be passed through parameters
type dataHandler struct {
	datadir string
}

// wrapHandler takes in a Cmd function (all declared below) and wraps
// it in the correct signature for the Cli Commands
func wrapHandler(hdl func(*cli.Context, *dataHandler) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		err := startLogger(ctx)
		if err != nil {
			return err
		}

		datadir, err := getDataDir(ctx)
		if err != nil {
			return fmt.Errorf("failed to access the datadir: %w", err)
		}

		return hdl(ctx, &dataHandler{datadir: datadir})
	}
}

// handleGenerateCmd generates a fresh keypair and stores it encrypted
func handleGenerateCmd(ctx *cli.Context, dHandler *dataHandler) error {
	log.Info("Generating key...")

	acct, err := evm.NewAccount()
	if err != nil {
		return fmt.Errorf("generate account failed, err is %w", err)
	}

	file, err := keystore.EncryptAndSave(acct.Keypair(), dHandler.datadir, resolvePassword(ctx))
	if err != nil {
		return err
	}

	color.Green("Address:  %s", acct.Address.Hex())
	color.Green("Keystore: %s", file)
	color.Yellow("Mnemonic: %s", acct.Mnemonic)
	color.Yellow("The mnemonic is shown once and not stored, write it down.")
	return nil
}

// handleImportCmd imports an external private key into the keystore
func handleImportCmd(ctx *cli.Context, dHandler *dataHandler) error {
	log.Info("Importing key...")

	privkeyflag := ctx.String(config.PrivateKeyFlag.Name)
	if privkeyflag == "" {
		return fmt.Errorf("privateKey is nil")
	}

	pk, err := crypto.HexToECDSA(strings.TrimPrefix(privkeyflag, "0x"))
	if err != nil {
		return fmt.Errorf("parse private key failed, err is %w", err)
	}
	kp := secp256k1.NewKeypair(*pk)

	file, err := keystore.EncryptAndSave(kp, dHandler.datadir, resolvePassword(ctx))
	if err != nil {
		return err
	}

	color.Green("Address:  %s", kp.CommonAddress().Hex())
	color.Green("Keystore: %s", file)
	return nil
}

func resolvePassword(ctx *cli.Context) []byte {
	if pwdflag := ctx.String(config.PasswordFlag.Name); pwdflag != "" {
		return []byte(pwdflag)
	}
	if pwd := os.Getenv(keystore.EnvPassword); pwd != "" {
		return []byte(pwd)
	}
	return keystore.GetPassword("Enter password to encrypt keystore file:")
}

// getDataDir obtains the path to the keystore and returns it as a string
func getDataDir(ctx *cli.Context) (string, error) {
	// key directory is datadir/keystore/
	if dir := ctx.String(config.KeystorePathFlag.Name); dir != "" {
		datadir, err := filepath.Abs(dir)
		if err != nil {
			return "", err
		}
		log.Trace(fmt.Sprintf("Using keystore dir: %s", datadir))
		return datadir, nil
	}
	return "", fmt.Errorf("datadir flag not supplied")
}
