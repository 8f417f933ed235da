// ft-otp - Generate time-based one-time passwords from a stored secret key
//
// -g registers a new hex key into the persisted key store; -k computes the
// current 6-digit TOTP code from a stored key file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/84adam/ft-otp/config"
	"github.com/84adam/ft-otp/crypto"
	"github.com/84adam/ft-otp/otp"
	"github.com/84adam/ft-otp/storage"
)

const usage = `ft-otp - Generate time-based one-time passwords

USAGE:
    ft-otp -g <keyfile>    Validate the 64-character hex key in <keyfile> and
                           save it into the persisted key store (ft_otp.key)
    ft-otp -k <keyfile>    Read the stored key file and print the current
                           6-digit one-time password

Exactly one of -g or -k must be given.
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	var (
		genFile = flag.String("g", "", "Hex key file to validate and store")
		keyFile = flag.String("k", "", "Stored key file to generate a password from")
	)

	flag.Parse()

	// Exactly one mode, no stray arguments.
	if (*genFile == "") == (*keyFile == "") || flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logError("Configuration error: %v", err)
		os.Exit(1)
	}

	if *genFile != "" {
		if err := handleGenerate(*genFile, cfg.KeyFile); err != nil {
			logError("%v", err)
			os.Exit(1)
		}
		return
	}

	if err := handleCode(*keyFile, os.Stdout); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// handleGenerate reads a raw hex key file, validates it, and saves the key
// verbatim into the persisted store at storePath.
func handleGenerate(srcPath, storePath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("key file not found: %s", srcPath)
		}
		return fmt.Errorf("failed to read key file: %w", err)
	}

	hexKey := strings.TrimSpace(string(data))

	store := storage.NewKeyStore(storePath)
	if err := store.Save(hexKey); err != nil {
		if errors.Is(err, crypto.ErrInvalidKeyFormat) {
			return fmt.Errorf("key must be 64 hexadecimal characters")
		}
		return err
	}

	fmt.Printf("Key was successfully saved in %s.\n", storePath)
	return nil
}

// handleCode reads a stored key file and writes the current TOTP code to w.
// The wall clock is read exactly once per invocation.
func handleCode(path string, w io.Writer) error {
	store := storage.NewKeyStore(path)

	key, err := store.LoadKey()
	if err != nil {
		return err
	}
	defer crypto.SecureZeroBytes(key)

	code, err := otp.TOTP(key, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintln(w, code)
	return nil
}

func logError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
