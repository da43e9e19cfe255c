package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/blimu-dev/query-gen/internal/cli"
)

func main() {
	root := &cobra.Command{
		Use:   "query-gen",
		Short: "Generate typed TanStack Query hooks from OpenAPI specs",
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var configPath string
	var f cli.FallbackParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate hooks for selected operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerate(cli.RunGenerateParams{
				ConfigPath: configPath,
				Fallback:   f,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to querygen.yaml config")
	// Fallback single-run flags
	cmd.Flags().StringVar(&f.Spec, "input", "", "OpenAPI spec file (yaml/json) or URL")
	cmd.Flags().StringVar(&f.OutDir, "out", "", "Output directory")
	cmd.Flags().StringVar(&f.Namespace, "namespace", "", "Cache key namespace (default: api)")
	cmd.Flags().StringVar(&f.Version, "react-query", "", "Target react-query major version: v3, v4, or v5 (default: v5)")
	cmd.Flags().StringArrayVar(&f.Operations, "operation", nil, "Operation to generate, by operationId or \"METHOD /path\" (repeatable; default: all)")
	cmd.Flags().StringVar(&f.Overwrite, "overwrite", "", "Overwrite policy: always, never, or missing (default: always)")
	cmd.Flags().BoolVar(&f.QueryHook, "query", true, "Generate useQuery call-sites")
	cmd.Flags().BoolVar(&f.MutationHook, "mutation", false, "Generate useMutation call-sites")
	cmd.Flags().BoolVar(&f.SuspenseHook, "suspense", false, "Generate useSuspenseQuery call-sites (v5 only)")
	cmd.Flags().BoolVar(&f.InfiniteHook, "infinite", false, "Generate useInfiniteQuery call-sites")

	return cmd
}

func newListCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List operations declared in an OpenAPI spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunList(input, cli.Stdout)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI spec file (yaml/json) or URL")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an OpenAPI spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(input)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI spec file (yaml/json) or URL")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
