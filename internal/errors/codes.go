package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// Logged alongside responses so operators can grep by category.

const (
	// Validation (VALIDATION_)
	ValidationRequired     = "VALIDATION_REQUIRED"      // missing required field
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed request body

	// Shops (SHOP_)
	ShopNotFound   = "SHOP_NOT_FOUND"   // unknown slug
	ShopSlugExists = "SHOP_SLUG_EXISTS" // duplicate slug on create

	// Internal (INTERNAL_)
	InternalServerError  = "INTERNAL_SERVER_ERROR"  // unexpected failure
	InternalStorageError = "INTERNAL_STORAGE_ERROR" // store read/write failure
)
