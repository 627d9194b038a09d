package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/j2kstream/codestream"
	"github.com/dhamidi/j2kstream/format"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string
	var comments bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "List the marker segments of a codestream as they are parsed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(dumpFormat, os.Stdout)
			if err != nil {
				return err
			}

			f, err := openInput(args[0])
			if err != nil {
				return fmt.Errorf("open codestream: %w", err)
			}
			defer f.Close()

			log := commonlog.GetLogger("j2kstream.dump")
			var encodeErr error
			p, err := codestream.Parse(f, codestream.HandlerFunc(func(p *codestream.Parser, seg codestream.Segment) {
				if encodeErr = enc.Encode(seg); encodeErr != nil {
					if err := p.Cancel(); err != nil {
						log.Warningf("stop parser: %s", err)
					}
				}
			}))
			if encodeErr != nil {
				return fmt.Errorf("encode %s: %w", dumpFormat, encodeErr)
			}
			if err != nil {
				return fmt.Errorf("parse codestream: %w", err)
			}

			if comments {
				for _, seg := range p.Segments() {
					if seg.Code != codestream.COM {
						continue
					}
					c, err := codestream.ParseComment(p.Bytes(), seg)
					if err != nil {
						return fmt.Errorf("read comment: %w", err)
					}
					text, err := c.Text()
					if err != nil {
						text = fmt.Sprintf("<%d bytes: %s>", len(c.Data), err)
					}
					fmt.Printf("comment\t%d\t%s\n", seg.Offset, text)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().BoolVarP(&comments, "comments", "c", false, "print the text of COM segments")

	return cmd
}
