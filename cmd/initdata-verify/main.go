// Command initdata-verify checks a raw init-data payload from the
// command line, for debugging Mini App backends.
//
// The bot token comes from --bot-token or the BOT_TOKEN environment
// variable (a .env file is honored); third-party validation uses
// --public-key with the hex-encoded Ed25519 key published by Telegram.
package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/telegram-webapp/sdk/initdata"
	"github.com/telegram-webapp/sdk/internal/logger"
)

var (
	botToken  string
	publicKey string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "initdata-verify <init-data>",
	Short: "Verify a Telegram Mini App init-data payload",
	Long: `initdata-verify checks the signature on a raw init-data string and,
when it is valid, prints the parsed payload as JSON.

With --bot-token (or BOT_TOKEN in the environment or a .env file) the
hash field is checked with the bot-side HMAC scheme. With --public-key
the signature field is checked against Telegram's Ed25519 key instead.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&botToken, "bot-token", "", "bot token for HMAC validation (defaults to $BOT_TOKEN)")
	rootCmd.Flags().StringVar(&publicKey, "public-key", "", "hex-encoded Ed25519 public key for third-party validation")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		logger.Enable()
	}
	raw := args[0]

	key, err := resolveKey()
	if err != nil {
		return err
	}

	if err := initdata.Validate(raw, key); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	data, err := initdata.Parse(raw)
	if err != nil {
		return fmt.Errorf("signature valid but payload malformed: %w", err)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func resolveKey() (initdata.Key, error) {
	_ = godotenv.Load()

	pk := publicKey
	if pk == "" && botToken == "" {
		pk = os.Getenv("TG_PUBLIC_KEY")
	}
	if pk != "" {
		keyBytes, err := hex.DecodeString(pk)
		if err != nil {
			return nil, fmt.Errorf("bad public key: %w", err)
		}
		return initdata.Ed25519PublicKey(keyBytes), nil
	}

	token := botToken
	if token == "" {
		token = os.Getenv("BOT_TOKEN")
	}
	if token == "" {
		return nil, errors.New("no key material: pass --bot-token, --public-key or set BOT_TOKEN")
	}
	return initdata.BotToken(token), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
