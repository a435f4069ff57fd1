package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/newbienorbie/prostore/config"
	"github.com/newbienorbie/prostore/utils"
)

func main() {
	root := &cobra.Command{
		Use:   "storectl",
		Short: "Prostore maintenance commands",
	}

	root.AddCommand(migrateCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadConfig()
			return config.RunMigrations(config.BuildDSN())
		},
	}
}

func seedCmd() *cobra.Command {
	var adminEmail, adminPassword string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed sample products and an admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadConfig()
			config.ConnectDB()
			defer config.CloseDB()

			ctx := context.Background()

			hash, err := utils.HashPassword(adminPassword)
			if err != nil {
				return fmt.Errorf("hash admin password: %w", err)
			}

			_, err = config.DB.Exec(ctx, `
				INSERT INTO users (name, email, password, role)
				VALUES ('Admin', $1, $2, 'admin')
				ON CONFLICT (email) DO NOTHING`,
				adminEmail, hash,
			)
			if err != nil {
				return fmt.Errorf("seed admin user: %w", err)
			}

			for _, p := range sampleProducts {
				_, err := config.DB.Exec(ctx, `
					INSERT INTO products (name, slug, category, brand, description, images, price, stock, is_featured, banner)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
					ON CONFLICT (slug) DO NOTHING`,
					p.name, p.slug, p.category, p.brand, p.description, p.images, p.price, p.stock, p.isFeatured, p.banner,
				)
				if err != nil {
					return fmt.Errorf("seed product %s: %w", p.slug, err)
				}
			}

			log.Printf("Seeded %d products and admin user %s", len(sampleProducts), adminEmail)
			return nil
		},
	}

	cmd.Flags().StringVar(&adminEmail, "admin-email", "admin@example.com", "email for the seeded admin user")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "123456", "password for the seeded admin user")

	return cmd
}

type seedProduct struct {
	name        string
	slug        string
	category    string
	brand       string
	description string
	images      []string
	price       string
	stock       int
	isFeatured  bool
	banner      *string
}

func strPtr(s string) *string { return &s }

var sampleProducts = []seedProduct{
	{
		name:        "Polo Sporting Stretch Shirt",
		slug:        "polo-sporting-stretch-shirt",
		category:    "Men's Dress Shirts",
		brand:       "Polo",
		description: "Classic Polo style with modern comfort",
		images:      []string{"/images/sample-products/p1-1.jpg", "/images/sample-products/p1-2.jpg"},
		price:       "59.99",
		stock:       5,
		isFeatured:  true,
		banner:      strPtr("/images/banner-1.jpg"),
	},
	{
		name:        "Brooks Brothers Long Sleeved Shirt",
		slug:        "brooks-brothers-long-sleeved-shirt",
		category:    "Men's Dress Shirts",
		brand:       "Brooks Brothers",
		description: "Timeless style and premium comfort",
		images:      []string{"/images/sample-products/p2-1.jpg", "/images/sample-products/p2-2.jpg"},
		price:       "85.90",
		stock:       10,
		isFeatured:  true,
		banner:      strPtr("/images/banner-2.jpg"),
	},
	{
		name:        "Tommy Hilfiger Classic Fit Dress Shirt",
		slug:        "tommy-hilfiger-classic-fit-dress-shirt",
		category:    "Men's Dress Shirts",
		brand:       "Tommy Hilfiger",
		description: "A perfect blend of sophistication and comfort",
		images:      []string{"/images/sample-products/p3-1.jpg", "/images/sample-products/p3-2.jpg"},
		price:       "99.95",
		stock:       0,
	},
	{
		name:        "Calvin Klein Slim Fit Stretch Shirt",
		slug:        "calvin-klein-slim-fit-stretch-shirt",
		category:    "Men's Dress Shirts",
		brand:       "Calvin Klein",
		description: "Streamlined design with flexible stretch fabric",
		images:      []string{"/images/sample-products/p4-1.jpg", "/images/sample-products/p4-2.jpg"},
		price:       "39.95",
		stock:       10,
	},
	{
		name:        "Polo Ralph Lauren Oxford Shirt",
		slug:        "polo-ralph-lauren-oxford-shirt",
		category:    "Men's Dress Shirts",
		brand:       "Polo",
		description: "Iconic Polo design with refined oxford fabric",
		images:      []string{"/images/sample-products/p5-1.jpg", "/images/sample-products/p5-2.jpg"},
		price:       "79.99",
		stock:       6,
	},
	{
		name:        "Polo Classic Pink Hoodie",
		slug:        "polo-classic-pink-hoodie",
		category:    "Men's Sweatshirts",
		brand:       "Polo",
		description: "Soft, stylish, and perfect for laid-back days",
		images:      []string{"/images/sample-products/p6-1.jpg", "/images/sample-products/p6-2.jpg"},
		price:       "99.99",
		stock:       8,
	},
}
