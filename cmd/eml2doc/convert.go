package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/emurenMRz/eml2doc/internal/automation"
	"github.com/emurenMRz/eml2doc/internal/convert"
	"github.com/emurenMRz/eml2doc/internal/launcher"
	"github.com/emurenMRz/eml2doc/internal/outlook"
	"github.com/emurenMRz/eml2doc/internal/poller"
	"github.com/emurenMRz/eml2doc/internal/source"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <source> <destination>",
	Short: "Convert a message to a document (same as running eml2doc without a command)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

// mailClient is a connected automation client that must be closed.
type mailClient interface {
	automation.Client
	Close() error
}

// connect attaches to the mail client. It is only called once the rewritten
// message has been opened.
var connect = func() (mailClient, error) {
	c, err := outlook.Connect()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	src, dst := args[0], args[1]

	ok, err := convertMessage(ctx, src, dst)
	if err != nil {
		logrus.WithError(err).WithField("source", src).Error("Conversion abandoned")
		fmt.Fprintf(cmd.OutOrStdout(), "Error converting %s\n%v\n", src, err)
		return errFailed
	}

	if ok {
		fmt.Fprint(cmd.OutOrStdout(), "[PASS] ")
	} else {
		fmt.Fprint(cmd.OutOrStdout(), "[FAIL] ")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Converting %s to %s\n", src, dst)

	if !ok {
		return errFailed
	}
	return nil
}

func convertMessage(ctx context.Context, src, dst string) (bool, error) {
	path, index, err := resolveSource(src)
	if err != nil {
		return false, err
	}

	conv := convert.New(
		launcher.New(),
		clientFinalizer{policy: cfg.Policy()},
		convert.Options{TempDir: cfg.TempDir, Format: cfg.SaveFormat()},
	)

	return conv.Convert(ctx, convert.Job{Source: path, Index: index, Destination: dst})
}

// clientFinalizer connects to the mail client when the poller is first
// needed, so a message that cannot be loaded or rewritten never starts it.
type clientFinalizer struct {
	policy poller.Policy
}

func (f clientFinalizer) AwaitAndFinalize(ctx context.Context, req poller.Request) (bool, error) {
	client, err := connect()
	if err != nil {
		return false, err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to release mail client")
		}
	}()

	return poller.New(client, f.policy).AwaitAndFinalize(ctx, req)
}

// resolveSource maps a mailbox name to its file when a mailbox directory is
// configured and returns the message index to load. A mailbox is never loaded
// whole: without --msg its first message is used.
func resolveSource(src string) (string, int, error) {
	if cfg.MailboxDir == "" {
		return src, msgIndex, nil
	}

	path, err := source.MailboxPath(cfg.MailboxDir, src)
	if err != nil {
		return "", 0, err
	}

	index := msgIndex
	if index < 0 {
		index = 0
	}

	return path, index, nil
}
