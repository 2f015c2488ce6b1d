package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nzeid/glidejson-go"
)

func newB64EncodeCmd(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "b64encode [file]",
		Short: "Base64-encode raw bytes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(gs, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(gs.stdOut, glidejson.Base64Encode(data))
			return nil
		},
	}
}

func newB64DecodeCmd(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "b64decode [file]",
		Short: "decode Base64 text into raw bytes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(gs, args)
			if err != nil {
				return err
			}
			decoded, err := glidejson.Base64Decode(strings.TrimSpace(string(data)))
			if err != nil {
				gs.logger.Debug(err)
				return err
			}
			gs.stdOut.Write(decoded)
			return nil
		},
	}
}
