// Bulk-imports shops from an XLSX workbook through the normal create path.
//
// Sheet "Shops" columns: Name | Slug | Template | PrimaryColor | SecondaryColor
// Sheet "Products" columns (optional): Slug | Name | Description | Price | ImageURL
//
// Usage: go run cmd/seed/main.go <xlsx_file_path>
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/hanbit/shopfront-backend/config"
	"github.com/hanbit/shopfront-backend/internal/app/model"
	"github.com/hanbit/shopfront-backend/internal/app/repository"
	"github.com/hanbit/shopfront-backend/internal/app/service"
	"github.com/xuri/excelize/v2"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}
	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	storeRepo := repository.NewFileStoreRepository(cfg.Storage.DataFile)
	if err := storeRepo.Init(); err != nil {
		log.Fatal("Failed to initialize store:", err)
	}
	shopService := service.NewShopService(storeRepo, cfg)

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	inputs, err := readShopsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}
	fmt.Printf("Total shops to import: %d\n", len(inputs))

	created := 0
	skipped := 0
	for _, input := range inputs {
		if _, url, err := shopService.CreateShop(input); err != nil {
			if errors.Is(err, service.ErrSlugTaken) {
				fmt.Printf("  skip %s: slug already taken\n", input.Slug)
			} else {
				fmt.Printf("  skip %s: %v\n", input.Slug, err)
			}
			skipped++
		} else {
			fmt.Printf("  created %s -> %s\n", input.Slug, url)
			created++
		}
	}

	fmt.Printf("Done: %d created, %d skipped\n", created, skipped)
}

func readShopsFromXLSX(filePath string) ([]service.ShopInput, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	shopRows, err := f.GetRows("Shops")
	if err != nil {
		return nil, fmt.Errorf("read Shops sheet: %w", err)
	}

	// Products sheet is optional
	productsBySlug := map[string][]model.Product{}
	if productRows, err := f.GetRows("Products"); err == nil {
		for i, row := range productRows {
			if i == 0 || len(row) < 2 {
				continue
			}
			slug := strings.TrimSpace(cell(row, 0))
			product := model.Product{
				Name:        strings.TrimSpace(cell(row, 1)),
				Description: strings.TrimSpace(cell(row, 2)),
				ImageURL:    strings.TrimSpace(cell(row, 4)),
			}
			if priceStr := strings.TrimSpace(cell(row, 3)); priceStr != "" {
				price, err := strconv.ParseFloat(priceStr, 64)
				if err != nil {
					fmt.Printf("  skip product row %d: bad price %q\n", i+1, priceStr)
					continue
				}
				product.Price = price
			}
			if slug == "" || product.Name == "" {
				continue
			}
			productsBySlug[slug] = append(productsBySlug[slug], product)
		}
	}

	var inputs []service.ShopInput
	for i, row := range shopRows {
		if i == 0 || len(row) < 2 {
			continue
		}
		slug := strings.TrimSpace(cell(row, 1))
		input := service.ShopInput{
			Name:     strings.TrimSpace(cell(row, 0)),
			Slug:     slug,
			Template: strings.TrimSpace(cell(row, 2)),
			Products: productsBySlug[slug],
		}
		primary := strings.TrimSpace(cell(row, 3))
		secondary := strings.TrimSpace(cell(row, 4))
		if primary != "" || secondary != "" {
			config := &model.ShopConfig{}
			config.Theme.PrimaryColor = primary
			config.Theme.SecondaryColor = secondary
			input.Config = config
		}
		inputs = append(inputs, input)
	}

	return inputs, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
