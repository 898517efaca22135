package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mercadoflow/meli-gateway/internal/config"
	"github.com/mercadoflow/meli-gateway/internal/store"
	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

var outputJSON bool

func init() {
	credRoot := &cobra.Command{
		Use:   "credentials",
		Short: "Manage stored marketplace credentials",
		Long: "Manage the per-shop MercadoLibre credentials the gateway uses to call\n" +
			"the marketplace on behalf of sellers.",
	}

	credRoot.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON")

	credRoot.AddCommand(
		credListCmd(),
		credSetCmd(),
		credDeleteCmd(),
	)

	rootCmd.AddCommand(credRoot)
}

func openStore(ctx context.Context) (*store.PostgresStore, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return store.NewPostgresStore(ctx, cfg.Database.DSN())
}

func credListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored credentials",
		Example: `  meli-gateway credentials list
  meli-gateway credentials list --json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			creds, err := db.ListCredentials(ctx)
			if err != nil {
				return err
			}

			if outputJSON {
				// Tokens stay out of the listing on purpose.
				type row struct {
					OwnerID   int64     `json:"owner_id"`
					ShopID    string    `json:"shop_id"`
					ExpiresIn int       `json:"expires_in"`
					UpdatedAt time.Time `json:"updated_at"`
				}
				rows := make([]row, 0, len(creds))
				for _, c := range creds {
					rows = append(rows, row{
						OwnerID:   c.OwnerID,
						ShopID:    c.ShopID,
						ExpiresIn: c.ExpiresIn,
						UpdatedAt: c.UpdatedAt,
					})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			if len(creds) == 0 {
				fmt.Println("No credentials stored.")
				return nil
			}
			return printCredentialTable(creds)
		},
	}
}

func credSetCmd() *cobra.Command {
	var (
		ownerID      int64
		shopID       string
		accessToken  string
		refreshToken string
		expiresIn    int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store or replace a shop's credential",
		Long: "Store the token pair obtained from the MercadoLibre OAuth flow. An\n" +
			"existing credential for the same owner is replaced.",
		Example: `  meli-gateway credentials set --owner-id 777 --shop-id 126526290 \
    --access-token APP_USR-... --refresh-token TG-...`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			cred := &domain.Credential{
				OwnerID:      ownerID,
				ShopID:       shopID,
				AccessToken:  accessToken,
				RefreshToken: refreshToken,
				TokenType:    "Bearer",
				ExpiresIn:    expiresIn,
			}
			if err := db.CreateCredential(ctx, cred); err != nil {
				return err
			}

			fmt.Printf("Stored credential for owner %d (shop %s).\n", ownerID, shopID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&ownerID, "owner-id", 0, "marketplace user ID")
	cmd.Flags().StringVar(&shopID, "shop-id", "", "shop identifier")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "OAuth access token")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "OAuth refresh token")
	cmd.Flags().IntVar(&expiresIn, "expires-in", 21600, "token lifetime in seconds")

	_ = cmd.MarkFlagRequired("owner-id")
	_ = cmd.MarkFlagRequired("shop-id")
	_ = cmd.MarkFlagRequired("access-token")
	_ = cmd.MarkFlagRequired("refresh-token")

	return cmd
}

func credDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <owner-id>",
		Short:   "Delete a stored credential",
		Example: `  meli-gateway credentials delete 777`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ownerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid owner ID %q: %w", args[0], err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.DeleteCredential(ctx, ownerID); err != nil {
				return err
			}

			fmt.Printf("Deleted credential for owner %d.\n", ownerID)
			return nil
		},
	}
}

func printCredentialTable(creds []domain.Credential) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "OWNER\tSHOP\tEXPIRES_IN\tUPDATED\n")
	for i := range creds {
		c := &creds[i]
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n",
			c.OwnerID, c.ShopID, c.ExpiresIn, c.UpdatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}
