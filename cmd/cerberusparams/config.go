// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/cerberusng/cerberusd/chaincfg"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogDirname  = "logs"
	defaultLogFilename = "cerberusparams.log"
	defaultLogLevel    = "info"
)

var (
	defaultHomeDir = btcutil.AppDataDir("cerberusd", false)
	defaultLogDir  = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// errMultipleNetworks describes an error where more than one network was
// requested on the command line.
var errMultipleNetworks = errors.New("multiple networks (--testnet, " +
	"--regtest, --network) cannot be used together -- choose only one")

// NetworkFlags holds the network selection flags.  At most one of them may be
// given; without any the main network is used.
type NetworkFlags struct {
	TestNet bool   `long:"testnet" description:"Use the test network"`
	RegTest bool   `long:"regtest" description:"Use the regression test network"`
	Network string `long:"network" description:"Network to use {main, test, regtest}"`
}

// resolveNetwork returns the identifier of the selected network.
func (f *NetworkFlags) resolveNetwork() (string, error) {
	name := chaincfg.MainNetName
	numNets := 0
	if f.TestNet {
		numNets++
		name = chaincfg.TestNetName
	}
	if f.RegTest {
		numNets++
		name = chaincfg.RegTestName
	}
	if f.Network != "" {
		numNets++
		name = f.Network
	}
	if numNets > 1 {
		return "", errMultipleNetworks
	}

	// Reject unknown names here so the usage message is shown with them.
	if _, err := chaincfg.ParseNetwork(name); err != nil {
		return "", err
	}
	return name, nil
}

// config defines the configuration options for cerberusparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	NetworkFlags

	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	Dump       bool   `long:"dump" description:"Dump every parameter of the selected network"`
	Address    string `long:"address" description:"Encode a hex hash160 as a pay-to-pubkey-hash address of the selected network"`

	// network is the resolved network identifier.
	network string

	// addressHash is the decoded --address hash.
	addressHash []byte
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		var homeDir string
		u, err := user.Current()
		if err == nil {
			homeDir = u.HomeDir
		} else {
			homeDir = os.Getenv("HOME")
		}

		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options and overwrite or add any specified
//     options
//  3. Validate the network selection, debug level and address
//
// The above results in the tool functioning properly without any config
// settings while still allowing the user to override settings with the
// command line options.  Command line options always take precedence.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if !errors.As(err, &flagsErr) || flagsErr.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return nil, nil, err
	}

	cfg.network, err = cfg.resolveNetwork()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("loadConfig: %v", err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	if cfg.Address != "" {
		hash, err := hex.DecodeString(cfg.Address)
		if err == nil && len(hash) != 20 {
			err = fmt.Errorf("want 20 bytes, got %d", len(hash))
		}
		if err != nil {
			err := fmt.Errorf("loadConfig: invalid --address %q: %v",
				cfg.Address, err)
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
		cfg.addressHash = hash
	}

	return &cfg, remainingArgs, nil
}
