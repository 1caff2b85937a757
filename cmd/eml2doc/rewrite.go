package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/emurenMRz/eml2doc/internal/header"
	"github.com/emurenMRz/eml2doc/internal/source"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <source> <output>",
	Short: "Write the token-subject copy of a message without opening it",
	Args:  cobra.ExactArgs(2),
	RunE:  runRewrite,
}

func runRewrite(cmd *cobra.Command, args []string) error {
	path, index, err := resolveSource(args[0])
	if err != nil {
		return err
	}

	raw, err := source.Load(path, index)
	if err != nil {
		return err
	}

	token, err := header.NewToken()
	if err != nil {
		return err
	}

	res := header.RewriteSubject(raw, token)

	if err := header.Verify(res.Rewritten, token); err != nil {
		if errors.Is(err, header.ErrTokenNotVisible) {
			return err
		}
		logrus.WithError(err).Warn("Rewritten header could not be parsed")
	}

	if err := os.WriteFile(args[1], res.Rewritten, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[1], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Token: %s\n", token)
	if res.Found {
		fmt.Fprintf(out, "Original subject: %s\n", res.OriginalSubject)
	} else {
		fmt.Fprintln(out, "Original subject: (none, header synthesized)")
	}

	return nil
}
