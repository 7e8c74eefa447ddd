package options

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/notes/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Output errors as JSON.")
}

// HandleError prints err as a JSON object on the command's output when
// --json is set, and otherwise returns it unchanged.
func (o *OutputOptions) HandleError(cmd *cobra.Command, err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	}
	return err
}

// FormatOptions selects how results are printed.
type FormatOptions struct {
	Output string
}

func AddFormatArg(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", string(printers.FormatText),
		"Output format. One of 'text', 'json' or 'yaml'.")
}

func (o *FormatOptions) Format() (printers.Format, error) {
	return printers.ParseFormat(o.Output)
}
