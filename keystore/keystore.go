// Copyright 2021 Compass Systems
// SPDX-License-Identifier: LGPL-3.0-only

// Package keystore loads and stores operator keys as encrypted
// <address>.key files, one secp256k1 keypair per file.
package keystore

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/ChainSafe/chainbridge-utils/crypto/secp256k1"
	bridgeks "github.com/ChainSafe/chainbridge-utils/keystore"
	"github.com/pkg/errors"
	terminal "golang.org/x/term"
)

const (
	EnvPassword = "KEYSTORE_PASSWORD"
	KeyType     = "secp256k1"
)

// for cache the pswd for the same account
var keyPassCache = map[string][]byte{}

// GetPassword prompt user to enter password for encrypted keystore
func GetPassword(msg string) []byte {
	for {
		fmt.Println(msg)
		fmt.Print("> ")
		password, err := terminal.ReadPassword(int(syscall.Stdin))
		if err != nil {
			fmt.Printf("invalid input: %s\n", err)
		} else {
			fmt.Printf("\n")
			return password
		}
	}
}

// passwordFor resolves the keystore password: cache first, then the
// environment, then an interactive prompt.
func passwordFor(addr, path string) []byte {
	if cached, exist := keyPassCache[addr]; exist {
		return cached
	}
	var pswd []byte
	if pswdStr := os.Getenv(EnvPassword); pswdStr != "" {
		pswd = []byte(pswdStr)
	} else {
		pswd = GetPassword(fmt.Sprintf("Enter password for key %s:", path))
	}
	keyPassCache[addr] = pswd
	return pswd
}

// KeypairFromAddress attempts to load the encrypted key file for the
// provided address, prompting the user for the password when it is not
// cached or in the environment.
func KeypairFromAddress(addr, path string) (*secp256k1.Keypair, error) {
	file := fmt.Sprintf("%s/%s.key", path, addr)
	// Make sure key exists before prompting password
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return nil, fmt.Errorf("key file not found: %s", file)
	}

	pswd := passwordFor(addr, file)
	kp, err := bridgeks.ReadFromFileAndDecrypt(file, pswd, KeyType)
	if err != nil {
		return nil, errors.Wrapf(err, "decrypt key file %s", file)
	}

	sk, ok := kp.(*secp256k1.Keypair)
	if !ok {
		return nil, fmt.Errorf("unexpected keypair type in %s", file)
	}
	return sk, nil
}

// EncryptAndSave writes kp to dir/<address>.key encrypted with
// password and returns the file path.
func EncryptAndSave(kp *secp256k1.Keypair, dir string, password []byte) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", errors.Wrapf(err, "create keystore dir %s", dir)
	}

	file := filepath.Join(dir, fmt.Sprintf("%s.key", kp.Address()))
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return "", errors.Wrapf(err, "create key file %s", file)
	}
	defer f.Close()

	if err = bridgeks.EncryptAndWriteToFile(f, kp, password); err != nil {
		return "", errors.Wrapf(err, "encrypt key file %s", file)
	}
	return file, nil
}
