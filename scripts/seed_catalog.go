// seed_catalog.go — standalone script to load a products JSON file and seed
// the catalog via the Outfitter API.
//
// Usage:
//
//	go run scripts/seed_catalog.go -file products.json -api http://localhost:8700 -token $OUTFITTER_ADMIN_TOKEN
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

type product struct {
	Name         string                 `json:"name"`
	Category     string                 `json:"category"`
	Color        string                 `json:"color,omitempty"`
	Retailer     string                 `json:"retailer,omitempty"`
	Price        float64                `json:"price"`
	DeliveryDays int                    `json:"delivery_days"`
	Rating       *float64               `json:"rating,omitempty"`
	Specs        map[string]interface{} `json:"specs,omitempty"`
}

func main() {
	filePath := flag.String("file", "products.json", "path to products JSON file")
	apiURL := flag.String("api", "http://localhost:8700", "Outfitter API base URL")
	token := flag.String("token", "", "admin bearer token")
	dryRun := flag.Bool("dry-run", false, "print products without posting")
	flag.Parse()

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read %s: %v", *filePath, err)
	}

	var products []product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Fatalf("parse %s: %v", *filePath, err)
	}

	posted := 0
	for _, p := range products {
		if p.Name == "" || p.Category == "" {
			log.Printf("skipping product with missing name/category: %+v", p)
			continue
		}
		if *dryRun {
			fmt.Printf("would post: %s (%s) $%.2f\n", p.Name, p.Category, p.Price)
			continue
		}
		if err := post(*apiURL, *token, p); err != nil {
			log.Printf("post %s: %v", p.Name, err)
			continue
		}
		posted++
	}
	log.Printf("seeded %d/%d products", posted, len(products))
}

func post(apiURL, token string, p product) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, apiURL+"/api/v1/products", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
