// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ctmc/internal/logger"
	"github.com/katalvlaran/ctmc/model"
)

func newNormalizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <model-file>",
		Short: "Rewrite a model in canonical form",
		Long: `Loads a model (applying the truncate/zero-pad size recovery), stamps it with the
current time and writes it back. Without --out the JSON document goes to stdout;
with --save it is written to ctmc_model_<n>x<n>_<timestamp>.json. An --out path
ending in .yaml or .yml is written as YAML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			now := time.Now()
			m.Stamp(now)

			path, _ := cmd.Flags().GetString("out")
			if save, _ := cmd.Flags().GetBool("save"); save && path == "" {
				path = model.FileName(m, now)
			}
			if path == "" {
				return model.Encode(cmd.OutOrStdout(), m)
			}

			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			switch strings.ToLower(filepath.Ext(path)) {
			case ".yaml", ".yml":
				err = model.EncodeYAML(f, m)
			default:
				err = model.Encode(f, m)
			}
			if err != nil {
				return err
			}
			logger.Info("model written", "path", path, "states", m.Size)

			return f.Close()
		},
	}
	cmd.Flags().StringP("out", "o", "", "Output path")
	cmd.Flags().Bool("save", false, "Write to the conventional timestamped file name")

	return cmd
}
