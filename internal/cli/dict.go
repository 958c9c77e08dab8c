package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Word list commands",
	}

	cmd.AddCommand(newDictCheckCmd())
	cmd.AddCommand(newDictInfoCmd())

	return cmd
}

func newDictCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>...",
		Short: "Check whether words are in the word list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			checks := make([]WordCheck, len(args))
			for i, word := range args {
				word = strings.ToUpper(strings.TrimSpace(word))
				checks[i] = WordCheck{
					Word:  word,
					Valid: app.DictionaryService.Contains(word),
				}
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(checks)
			return nil
		},
	}
}

func newDictInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show word count and fingerprint of the word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(DictionaryInfo{
				Path:        cfg.DictionaryPath,
				WordCount:   app.DictionaryService.WordCount(),
				Fingerprint: app.DictionaryService.Fingerprint(),
			})
			return nil
		},
	}
}
