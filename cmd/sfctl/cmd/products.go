package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/storefront/internal/api/client"
)

func productsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Browse and manage catalog products",
	}

	root.AddCommand(
		productsListCmd(),
		productsAddCmd(),
		productsGetCmd(),
		productsDeleteCmd(),
	)

	return root
}

func productsListCmd() *cobra.Command {
	var (
		categories []string
		brands     []string
		minPrice   float64
		maxPrice   float64
		search     string
		sortBy     string
		page       int
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Example: `  sfctl products list
  sfctl products list --category c1 --category c2 --sort price-asc
  sfctl products list --search "jazz bass" --min-price 1500 --max-price 4000 --page 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := apiclient.ProductFilter{
				CategoryIDs: categories,
				BrandIDs:    brands,
				Search:      search,
				SortBy:      sortBy,
				Page:        page,
				Limit:       limit,
			}
			if cmd.Flags().Changed("min-price") {
				f.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				f.MaxPrice = &maxPrice
			}

			result, err := newClient().ListProducts(cmd.Context(), f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, result)
			}
			if len(result.Products) == 0 {
				fmt.Fprintln(out, "No products found.")
				return nil
			}
			if err := printProductTable(out, result.Products); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d of %d products\n", len(result.Products), result.Total)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "category ID (repeatable)")
	cmd.Flags().StringSliceVar(&brands, "brand", nil, "brand ID (repeatable)")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price, inclusive")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price, inclusive")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive title search")
	cmd.Flags().StringVar(&sortBy, "sort", "", "relevance, price-asc or price-desc")
	cmd.Flags().IntVar(&page, "page", 0, "1-based page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")

	return cmd
}

func productsAddCmd() *cobra.Command {
	var category, brand string

	cmd := &cobra.Command{
		Use:   "add <marketplace-id>",
		Short: "Import a MercadoLibre item into the catalog",
		Example: `  sfctl products add MLB3846027829
  sfctl products add MLB3846027829 --category c1 --brand b7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := newClient().AddProduct(cmd.Context(), apiclient.AddProductRequest{
				ProductID:  args[0],
				CategoryID: category,
				BrandID:    brand,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]string{"productId": id})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %s added.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category ID")
	cmd.Flags().StringVar(&brand, "brand", "", "brand ID")

	return cmd
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a product with live marketplace data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newClient().GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), d)
			}
			return printProductDetail(cmd.OutOrStdout(), d)
		},
	}
}

func productsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a product and its pictures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteProduct(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %s deleted.\n", args[0])
			return nil
		},
	}
}
