package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/christopherklint97/freelancecalc/internal/calc"
	"github.com/christopherklint97/freelancecalc/internal/quote"
)

func runTypes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tables := cfg.Tables()

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROJECT TYPE\tLABEL\tBASE HOURS")
	for _, pt := range tables.ProjectTypes() {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", pt.Key, pt.Label, pt.BaseHours)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "FEATURE\tLABEL\tHOURS")
	for _, f := range tables.Features() {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", f.Key, f.Label, f.Hours)
	}
	return tw.Flush()
}

// schemaTargets maps schema names to the values printed by calc and quote.
var schemaTargets = map[string]any{
	"result": &calc.Result{},
	"quote":  &quote.Document{},
	"inputs": &calc.Inputs{},
}

func runSchema(cmd *cobra.Command, args []string) error {
	name := "result"
	if len(args) > 0 {
		name = args[0]
	}
	target, ok := schemaTargets[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return printJSON(cmd.OutOrStdout(), r.Reflect(target))
}
