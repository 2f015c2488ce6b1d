package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nzeid/glidejson-go"
)

func newFormatCmd(gs *globalState) *cobra.Command {
	var indent string
	var crlf bool

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "parse JSON and re-emit it, optionally pretty-printed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if envIndent, ok := lookupEnvIndent(); ok && !cmd.Flags().Changed("indent") {
				indent = envIndent
			}
			data, err := readInput(gs, args)
			if err != nil {
				return err
			}
			v, perr := glidejson.Parse(data)
			if perr != nil {
				gs.logger.Warn(perr)
				fmt.Fprintln(gs.stdErr, "invalid")
				return errSilentExit
			}

			style, err := resolveIndentStyle(indent, crlf)
			if err != nil {
				return err
			}
			if style == nil {
				fmt.Fprintln(gs.stdOut, glidejson.Marshal(v))
				return nil
			}
			fmt.Fprintln(gs.stdOut, glidejson.MarshalIndent(v, *style))
			return nil
		},
	}

	cmd.Flags().StringVar(&indent, "indent", "none", "indentation style: none, two-space, or tab")
	cmd.Flags().BoolVar(&crlf, "crlf", false, "use CRLF line endings when indenting")
	return cmd
}

func lookupEnvIndent() (string, bool) {
	return lookupEnv("GLIDEJSON_INDENT")
}

// resolveIndentStyle returns nil for "none" (compact output) and a
// concrete style otherwise; an unrecognized value is a usage error.
func resolveIndentStyle(indent string, crlf bool) (*glidejson.IndentStyle, error) {
	switch indent {
	case "none":
		return nil, nil
	case "two-space":
		if crlf {
			return &glidejson.IndentSpacesCRLF, nil
		}
		return &glidejson.IndentSpacesLF, nil
	case "tab":
		if crlf {
			return &glidejson.IndentTabsCRLF, nil
		}
		return &glidejson.IndentTabsLF, nil
	default:
		return nil, fmt.Errorf("unrecognized --indent value %q (want none, two-space, or tab)", indent)
	}
}
