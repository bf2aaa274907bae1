package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akalin/gobech32/bech32"
	"github.com/akalin/gobech32/checksum"
	"github.com/btcsuite/btcd/chaincfg"
)

const (
	exitSuccess                     = 0
	exitCorrectionPossible          = 1
	exitCorrectionNotPossible       = 2
	exitInvalidCommandLineArguments = 3
	exitInvalidInput                = 4
)

func printUsageAndExit(name string) {
	name = filepath.Base(name)
	fmt.Printf(`
Usage:
  %s e(ncode) <hrp> <hex> [m]
  %s d(ecode) <string>
  %s v(erify) <string> [m]
  %s c(orrect) <string> [m]
  %s a(ddr) <network> <version> <hex>

Pass m to work with bech32m checksums instead of bech32. Networks:
mainnet, testnet, signet, regtest, simnet.

`, name, name, name, name, name)
	os.Exit(exitInvalidCommandLineArguments)
}

// algorithmArg interprets the optional trailing variant selector.
func algorithmArg(args []string) (checksum.Algorithm, bool) {
	if len(args) == 0 {
		return checksum.Bech32, true
	}
	if len(args) == 1 && strings.ToLower(args[0]) == "m" {
		return checksum.Bech32m, true
	}
	return checksum.Bech32, false
}

func networkHRP(network string) (string, bool) {
	var params *chaincfg.Params
	switch strings.ToLower(network) {
	case "mainnet":
		params = &chaincfg.MainNetParams
	case "testnet", "testnet3":
		params = &chaincfg.TestNet3Params
	case "signet":
		params = &chaincfg.SigNetParams
	case "regtest":
		params = &chaincfg.RegressionNetParams
	case "simnet":
		params = &chaincfg.SimNetParams
	default:
		return "", false
	}
	return params.Bech32HRPSegwit, true
}

func main() {
	name := os.Args[0]
	if len(os.Args) <= 2 {
		printUsageAndExit(name)
	}

	cmd := os.Args[1]
	arg := os.Args[2]

	switch strings.ToLower(cmd) {
	case "e":
		fallthrough
	case "encode":
		if len(os.Args) < 4 {
			printUsageAndExit(name)
		}
		a, ok := algorithmArg(os.Args[4:])
		if !ok {
			printUsageAndExit(name)
		}
		payload, err := hex.DecodeString(os.Args[3])
		if err != nil {
			fmt.Printf("Invalid payload hex: %s\n", err)
			os.Exit(exitInvalidInput)
		}
		s, err := bech32.Encode(a, arg, bech32.BytesToSymbols(payload))
		if err != nil {
			fmt.Printf("Encode error: %s\n", err)
			os.Exit(exitInvalidInput)
		}
		fmt.Println(s)

	case "d":
		fallthrough
	case "decode":
		hrp, data, a, err := bech32.DecodeAny(arg)
		if err != nil {
			fmt.Printf("Decode error: %s\n", err)
			os.Exit(exitInvalidInput)
		}
		fmt.Printf("Human-readable part: %s\n", hrp)
		fmt.Printf("Variant: %v\n", a)
		if payload, err := bech32.SymbolsToBytes(data); err == nil {
			fmt.Printf("Payload: %x\n", payload)
		} else {
			fmt.Printf("Payload symbols: %v\n", data)
		}

	case "v":
		fallthrough
	case "verify":
		a, ok := algorithmArg(os.Args[3:])
		if !ok {
			printUsageAndExit(name)
		}
		_, _, err := bech32.Decode(a, arg)
		switch {
		case err == nil:
			fmt.Println("Verify result: true")
		case errors.Is(err, bech32.ErrInvalidChecksum):
			fmt.Println("Verify result: false")
			if _, _, err := bech32.Correct(a, arg); err == nil {
				fmt.Println("Correction possible")
				os.Exit(exitCorrectionPossible)
			}
			fmt.Println("Correction not possible")
			os.Exit(exitCorrectionNotPossible)
		default:
			fmt.Printf("Verify error: %s\n", err)
			os.Exit(exitInvalidInput)
		}

	case "c":
		fallthrough
	case "correct":
		a, ok := algorithmArg(os.Args[3:])
		if !ok {
			printUsageAndExit(name)
		}
		s, offsets, err := bech32.Correct(a, arg)
		if errors.Is(err, checksum.ErrUncorrectable) {
			fmt.Printf("Correct error: %s\n", err)
			os.Exit(exitCorrectionNotPossible)
		} else if err != nil {
			fmt.Printf("Correct error: %s\n", err)
			os.Exit(exitInvalidInput)
		}
		fmt.Println(s)
		if len(offsets) > 0 {
			fmt.Printf("Corrected character offsets: %v\n", offsets)
		}

	case "a":
		fallthrough
	case "addr":
		if len(os.Args) != 5 {
			printUsageAndExit(name)
		}
		hrp, ok := networkHRP(arg)
		if !ok {
			fmt.Printf("Unknown network %q\n", arg)
			os.Exit(exitInvalidCommandLineArguments)
		}
		version, err := strconv.ParseUint(os.Args[3], 10, 8)
		if err != nil {
			fmt.Printf("Invalid witness version %q\n", os.Args[3])
			os.Exit(exitInvalidCommandLineArguments)
		}
		program, err := hex.DecodeString(os.Args[4])
		if err != nil {
			fmt.Printf("Invalid program hex: %s\n", err)
			os.Exit(exitInvalidInput)
		}
		addr, err := bech32.EncodeSegwit(hrp, byte(version), program)
		if err != nil {
			fmt.Printf("Address error: %s\n", err)
			os.Exit(exitInvalidInput)
		}
		fmt.Println(addr)

	default:
		printUsageAndExit(name)
	}

	os.Exit(exitSuccess)
}
