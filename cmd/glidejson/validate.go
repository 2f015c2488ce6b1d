package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nzeid/glidejson-go"
)

func newValidateCmd(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "check that input is well-formed JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(gs, args)
			if err != nil {
				return err
			}
			v, err := glidejson.Parse(data)
			if err != nil {
				var perr *glidejson.ParseError
				if errors.As(err, &perr) {
					gs.logger.WithField("offset", perr.Offset).Warn(perr.Reason)
				} else {
					gs.logger.Warn(err)
				}
				fmt.Fprintln(gs.stdErr, "invalid")
				return errSilentExit
			}
			_ = v
			fmt.Fprintln(gs.stdOut, "valid")
			return nil
		},
	}
}
