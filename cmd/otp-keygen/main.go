// otp-keygen - Create a new ft-otp secret key file
//
// By default the key is 32 random bytes; with -passphrase it is derived from
// an interactively prompted passphrase using Argon2id. The output file holds
// the key as 64 lowercase hex characters, ready for ft-otp -g.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/84adam/ft-otp/crypto"
)

const usage = `otp-keygen - Create a new ft-otp secret key file

USAGE:
    otp-keygen [FLAGS]

FLAGS:
    -out FILE       Output file (default: key.hex)
    -passphrase     Derive the key from a prompted passphrase (Argon2id)
                    instead of random bytes
    -force          Overwrite the output file if it exists

EXAMPLES:
    otp-keygen
    otp-keygen -out alice.hex
    otp-keygen -passphrase -out alice.hex
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	var (
		outPath        = flag.String("out", "key.hex", "Output file")
		fromPassphrase = flag.Bool("passphrase", false, "Derive the key from a prompted passphrase")
		force          = flag.Bool("force", false, "Overwrite the output file if it exists")
	)

	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := generateKeyFile(*outPath, *fromPassphrase, *force); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func generateKeyFile(outPath string, fromPassphrase, force bool) error {
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists (use -force to overwrite)", outPath)
		}
	}

	var key []byte
	if fromPassphrase {
		passphrase, err := readPassphrase()
		if err != nil {
			return fmt.Errorf("failed to read passphrase: %w", err)
		}
		if len(passphrase) == 0 {
			return fmt.Errorf("passphrase cannot be empty")
		}

		salt := crypto.GenerateRandomBytes(crypto.PassphraseSaltLength)
		key = crypto.DeriveKeyFromPassphrase(passphrase, salt, crypto.PassphraseDefault)
		crypto.SecureZeroBytes(passphrase)
	} else {
		key = crypto.GenerateRandomKey()
	}
	defer crypto.SecureZeroBytes(key)

	if err := os.WriteFile(outPath, []byte(crypto.EncodeKey(key)), 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	fmt.Printf("New key written to %s.\n", outPath)
	fmt.Printf("Register it with: ft-otp -g %s\n", outPath)
	return nil
}

func readPassphrase() ([]byte, error) {
	fmt.Print("Passphrase: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return nil, err
		}
		fmt.Println()
		return passphrase, nil
	}

	// Fallback for non-terminal input
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, err
	}
	return []byte(strings.TrimSpace(line)), nil
}
