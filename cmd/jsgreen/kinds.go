package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"jsgreen/internal/factory"
	"jsgreen/internal/kind"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds [flags]",
	Short: "List syntax kinds and their slot tables",
	Long: `Kinds prints every syntax kind with its class. --shape prints the slot
table or list configuration of one node kind; --category the members of a
grammar category.`,
	Args: cobra.NoArgs,
	RunE: runKinds,
}

func init() {
	kindsCmd.Flags().String("shape", "", "print the layout of one node kind (e.g. JS_IF_STATEMENT)")
	kindsCmd.Flags().String("category", "", "print the members of a category (e.g. AnyJsStatement)")
	kindsCmd.Flags().String("class", "", "only list kinds of this class")
}

func runKinds(cmd *cobra.Command, _ []string) error {
	shape, err := cmd.Flags().GetString("shape")
	if err != nil {
		return fmt.Errorf("failed to get shape flag: %w", err)
	}
	category, err := cmd.Flags().GetString("category")
	if err != nil {
		return fmt.Errorf("failed to get category flag: %w", err)
	}
	class, err := cmd.Flags().GetString("class")
	if err != nil {
		return fmt.Errorf("failed to get class flag: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case shape != "":
		k, ok := kind.FromName(strings.ToUpper(shape))
		if !ok {
			return fmt.Errorf("unknown kind %q", shape)
		}
		return printLayout(out, k)
	case category != "":
		for _, c := range kind.Categories() {
			if strings.EqualFold(c.String(), category) {
				for _, k := range c.Members() {
					fmt.Fprintln(out, k)
				}
				return nil
			}
		}
		return fmt.Errorf("unknown category %q", category)
	}

	for _, k := range kind.All() {
		if class != "" && !strings.EqualFold(k.Class().String(), class) {
			continue
		}
		line := fmt.Sprintf("%4d  %-44s %-15s", int(k), k, k.Class())
		if text := k.Text(); text != "" {
			line += " " + text
		} else if k.IsNode() && !k.IsUnknown() {
			line += " -> " + k.ToUnknown().String()
		}
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
	return nil
}

func printLayout(out io.Writer, k kind.Kind) error {
	switch factory.ArmOf(k) {
	case factory.ArmShape:
		sh := factory.ShapeOf(k)
		fmt.Fprintf(out, "%s (%d slots, unknown %s)\n", k, sh.Arity(), k.ToUnknown())
		for i, sl := range sh.Slots {
			fmt.Fprintf(out, "  %2d  %s\n", i, sl)
		}
	case factory.ArmNodeList:
		cfg := factory.NodeListOf(k)
		fmt.Fprintf(out, "%s: list of %s\n", k, cfg.Item)
	case factory.ArmSeparatedList:
		cfg := factory.SeparatedListOf(k)
		trailing := "no trailing separator"
		if cfg.AllowTrailing {
			trailing = "trailing separator allowed"
		}
		fmt.Fprintf(out, "%s: list of %s separated by %s, %s\n", k, cfg.Item, cfg.Separator, trailing)
	case factory.ArmPassThrough:
		fmt.Fprintf(out, "%s: unknown kind, keeps any children\n", k)
	default:
		return fmt.Errorf("%s is a token kind", k)
	}
	return nil
}
