package main

import (
	"io"
	"os"

	"cli-contacts/internal/cli"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newExportCommand(opts *options) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all contacts as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(opts)
			log := logrus.StandardLogger().WithField("type", "cmd/contacts/export")

			st, closeStore, err := openStore(cfg, log)
			if err != nil {
				return err
			}
			defer closeStore()

			book, err := st.Load(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return errors.Wrapf(err, "failed to create %s", outPath)
				}
				defer f.Close()
				w = f
			}

			if err := cli.ExportContacts(w, book); err != nil {
				return err
			}
			log.WithField("contacts", book.Len()).Debug("export completed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the CSV to this file instead of stdout")
	return cmd
}
