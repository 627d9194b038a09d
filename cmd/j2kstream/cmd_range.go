package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/j2kstream/extract"
	"github.com/spf13/cobra"
)

func newRangeCmd() *cobra.Command {
	var start, end int
	var out string

	cmd := &cobra.Command{
		Use:   "range <file>",
		Short: "Extract the bytes of tile-parts start..end without reading the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openInput(args[0])
			if err != nil {
				return fmt.Errorf("open codestream: %w", err)
			}
			defer f.Close()

			data, err := extract.ResolutionRange(f, start, end)
			if err != nil {
				return fmt.Errorf("extract range: %w", err)
			}

			if out == "" {
				fmt.Printf("range of length %d\n", len(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write range: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&start, "start", "s", 0, "first tile-part (resolution level) to include")
	cmd.Flags().IntVarP(&end, "end", "e", -1, "last tile-part to include, -1 for the rest of the stream")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the range to this file")

	return cmd
}
