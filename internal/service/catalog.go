package service

import (
	"io"                                 // Optional image payload
	"storefront_system/internal/domain"  // Domain models
	"storefront_system/internal/storage" // Image persistence
	"storefront_system/internal/utils"   // Unique code generation
	"strings"                            // Case-insensitive search terms

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ProductCodeLength is the digit count of generated product codes.
// 10^5 possible codes; generation degrades as the catalog approaches that.
const ProductCodeLength = 5

// Catalog manages an entrepreneur's products
type Catalog struct {
	DB     *gorm.DB           // Database handle
	Images storage.ImageStore // Image persistence
}

// NewCatalog builds a Catalog service
func NewCatalog(db *gorm.DB, images storage.ImageStore) *Catalog {
	return &Catalog{DB: db, Images: images}
}

// CreateProductInput carries the validated fields for a new product
type CreateProductInput struct {
	Name        string  // Product name, required
	Price       float64 // Unit price, must be non-negative
	Description string  // Optional description
	Quantity    int     // Units in stock, must be non-negative
}

// CreateProduct allocates a fresh 5-digit code, optionally stores the image
// under {code}_{sanitizedName}, and persists the product in one transaction.
func (c *Catalog) CreateProduct(ownerID uint, in CreateProductInput, image io.Reader, imageName string) (*domain.Product, error) {
	// Reject malformed input before touching the database
	if in.Name == "" || in.Price < 0 || in.Quantity < 0 {
		return nil, ErrInvalidInput
	}
	// Allocate a code no existing product holds
	code, err := utils.GenerateUniqueCode(ProductCodeLength, func(code string) (bool, error) {
		var n int64 // Count of products already holding the code
		if err := c.DB.Model(&domain.Product{}).Where("code = ?", code).Count(&n).Error; err != nil {
			return false, err // Propagate lookup errors
		}
		return n > 0, nil // Taken if any row matches
	})
	if err != nil {
		return nil, err
	}
	// Store the image first so the record never references a missing file
	imageFilename := ""
	if image != nil {
		safe := utils.SanitizeFilename(imageName) // Strip paths and unsafe characters
		if safe == "" {
			return nil, ErrInvalidInput // Nothing usable in the client filename
		}
		imageFilename = code + "_" + safe // Filename convention: {code}_{sanitizedName}
		if err := c.Images.Save(imageFilename, image); err != nil {
			return nil, err // Upload failure aborts the creation
		}
	}
	product := domain.Product{
		Code:          code,           // Generated unique code
		Name:          in.Name,        // Product name
		Price:         in.Price,       // Unit price
		Description:   in.Description, // Optional description
		Quantity:      in.Quantity,    // Units in stock
		ImageFilename: imageFilename,  // Stored image reference, "" if none
		OwnerID:       ownerID,        // Owning entrepreneur
	}
	// Persist atomically
	err = c.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&product).Error
	})
	if err != nil {
		// Creation failed: drop the orphaned image, if any
		if imageFilename != "" {
			_ = c.Images.Remove(imageFilename)
		}
		return nil, err
	}
	return &product, nil
}

// ListProducts returns the owner's products, optionally filtered to those
// whose name or code contains query as a case-insensitive substring.
func (c *Catalog) ListProducts(ownerID uint, query string) ([]domain.Product, error) {
	q := c.DB.Where("owner_id = ?", ownerID) // Owner scoping is mandatory
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"                   // Substring pattern
		q = q.Where("LOWER(name) LIKE ? OR code LIKE ?", like, like) // Match name or code
	}
	var products []domain.Product // Result slice
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// DeleteProduct removes the owner's product and its stored image. A missing
// or foreign product is ErrNotFound; a failed image removal is logged and
// swallowed so a lost file never blocks record deletion.
func (c *Catalog) DeleteProduct(ownerID uint, productID uint) error {
	var product domain.Product // Product to delete
	// Scope the lookup by owner so foreign products are invisible
	if err := c.DB.Where("id = ? AND owner_id = ?", productID, ownerID).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound // Missing or not owned
		}
		return err
	}
	// Remove the stored image before the record; failure is not fatal
	if product.ImageFilename != "" {
		if err := c.Images.Remove(product.ImageFilename); err != nil {
			logrus.WithFields(logrus.Fields{
				"product_id": product.ID,            // Product being deleted
				"filename":   product.ImageFilename, // Image that could not be removed
				"error":      err.Error(),           // Removal error
			}).Warn("Failed to remove product image")
		}
	}
	// Delete the record atomically
	return c.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&product).Error
	})
}
