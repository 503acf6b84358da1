package store

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/mohit-bt/ayurveda-website/models"
)

// seedProducts writes the default catalog on first start.
func (s *Store) seedProducts() error {
	path := s.config.ProductsFile()
	if fileExists(path) {
		return nil
	}
	s.productsMu.Lock()
	defer s.productsMu.Unlock()
	if err := s.writeJSONFile(path, models.DefaultProducts()); err != nil {
		return err
	}
	log.Printf("INFO: Created default products file: %s", path)
	return nil
}

// readProducts parses the products file. A missing or unreadable file yields
// the default catalog rather than an error, matching the profile endpoint's
// behaviour on a fresh install. Callers must hold at least a read lock.
func (s *Store) readProducts() []models.Product {
	path := s.config.ProductsFile()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("ERROR: Failed to read products file '%s': %v. Serving defaults.", path, err)
		}
		return models.DefaultProducts()
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Printf("ERROR: Failed to parse products file '%s': %v. Serving defaults.", path, err)
		return models.DefaultProducts()
	}
	return products
}

// ListProducts returns all products in file (insertion) order.
func (s *Store) ListProducts() ([]models.Product, error) {
	s.productsMu.RLock()
	defer s.productsMu.RUnlock()
	return s.readProducts(), nil
}

// GetProduct returns the product with the given id.
func (s *Store) GetProduct(id int64) (models.Product, error) {
	s.productsMu.RLock()
	defer s.productsMu.RUnlock()

	for _, p := range s.readProducts() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// CreateProduct assigns a new id, appends the product, and persists the
// whole catalog. The id is the current Unix-millisecond timestamp, nudged
// forward while a product with that id already exists (the file lock is held
// for the whole read-modify-write, so the check is reliable).
func (s *Store) CreateProduct(product models.Product) (models.Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products := s.readProducts()

	id := time.Now().UnixMilli()
	for idExists(products, id) {
		id++
	}
	product.ID = id

	products = append(products, product)
	if err := s.writeJSONFile(s.config.ProductsFile(), products); err != nil {
		return models.Product{}, err
	}

	log.Printf("INFO: Created product ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

// ReplaceProduct overwrites the entry matching product.ID in place, keeping
// its position in the file. Returns ErrProductNotFound when no entry matches;
// the stored list is left untouched in that case.
func (s *Store) ReplaceProduct(product models.Product) (models.Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products := s.readProducts()

	index := -1
	for i, p := range products {
		if p.ID == product.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Product{}, ErrProductNotFound
	}

	products[index] = product
	if err := s.writeJSONFile(s.config.ProductsFile(), products); err != nil {
		return models.Product{}, err
	}

	log.Printf("INFO: Updated product ID: %d", product.ID)
	return product, nil
}

// DeleteProduct removes the matching entry outright and persists the
// filtered list. Returns ErrProductNotFound when nothing matched.
func (s *Store) DeleteProduct(id int64) error {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products := s.readProducts()

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(products) {
		return ErrProductNotFound
	}

	if err := s.writeJSONFile(s.config.ProductsFile(), filtered); err != nil {
		return err
	}

	log.Printf("INFO: Deleted product ID: %d", id)
	return nil
}

func idExists(products []models.Product, id int64) bool {
	for _, p := range products {
		if p.ID == id {
			return true
		}
	}
	return false
}
