package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/emurenMRz/eml2doc/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

// errFailed is returned after the outcome has already been reported.
var errFailed = errors.New("conversion failed")

var (
	v   = config.New()
	cfg config.Config

	configFile string
	msgIndex   int
)

var rootCmd = &cobra.Command{
	Use:   "eml2doc <source> <destination>",
	Short: "Convert an email message to a document through the desktop mail client",
	Long: `eml2doc opens an email message in the desktop mail client, finds the window
it was opened in and saves it as a document.

The message subject is temporarily replaced with a unique token so the window
can be told apart from any other open item; the original subject is restored
before saving.`,
	Version:           version,
	Args:              cobra.ExactArgs(2),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runConvert,
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&configFile, "config", "", "Config file (YAML, JSON or TOML)")
	flags.IntVar(&msgIndex, "msg", -1, "Message index when the source is an mbox file (0 with --mailbox-dir)")
	flags.String("mailbox-dir", "", "Directory of mbox files; the source is then a mailbox name")
	flags.Int("attempts", 0, "Number of scans for the opened message window")
	flags.Duration("backoff", 0, "Delay after the first unsuccessful scan, doubled after each")
	flags.Duration("max-backoff", 0, "Upper bound for the delay between scans")
	flags.String("format", "", "Document format: doc, rtf, txt, html, mht, msg")
	flags.String("temp-dir", "", "Directory for the rewritten message (default: system temp)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")

	for key, flag := range map[string]string{
		config.KeyMailboxDir: "mailbox-dir",
		config.KeyAttempts:   "attempts",
		config.KeyBackoff:    "backoff",
		config.KeyMaxBackoff: "max-backoff",
		config.KeyFormat:     "format",
		config.KeyTempDir:    "temp-dir",
		config.KeyLogLevel:   "log-level",
		config.KeyLogFormat:  "log-format",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(convertCmd, rewriteCmd, inspectCmd)
}

func loadConfig(*cobra.Command, []string) error {
	var err error

	if cfg, err = config.Load(v, configFile); err != nil {
		return err
	}

	return setupLogging(cfg)
}

func setupLogging(cfg config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
