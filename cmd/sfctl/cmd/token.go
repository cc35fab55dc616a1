package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "token",
		Short: "Manage the marketplace OAuth token",
	}

	root.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Rotate the MercadoLibre access/refresh token pair",
		Long: "Asks the server to exchange its stored refresh token for a new pair.\n" +
			"Only the expiry is printed unless --output json is given.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := newClient().RefreshToken(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), tok)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token refreshed; expires in %s.\n",
				time.Duration(tok.ExpiresIn)*time.Second)
			return nil
		},
	})

	return root
}
