package cmd

import (
	"fmt"

	"github.com/go-chi/docgen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/ncnews/internal/app"
)

var routesJSON bool

func init() {
	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "Generate router documentation",
		Run: func(cmd *cobra.Command, args []string) {
			r := app.New(zap.NewNop().Sugar(), nil, nil).Router()

			if routesJSON {
				fmt.Fprintln(cmd.OutOrStdout(), docgen.JSONRoutesDoc(r))

				return
			}

			fmt.Fprintln(cmd.OutOrStdout(), docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
				ProjectPath: "github.com/SergeyParamoshkin/ncnews",
				Intro:       "NC News REST API generated docs.",
			}))
		},
	}
	routesCmd.Flags().BoolVar(&routesJSON, "json", false, "print the routes as json")

	RootCmd.AddCommand(routesCmd)
}
