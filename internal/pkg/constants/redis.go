package constants

// Redis key formats
const (
	// Catalog
	KeyCategories = "catalog:categories"
	KeyCategory   = "catalog:category:%s" // Format: catalog:category:{category_id}

	// Requests
	KeyRequest = "request:%s" // Format: request:{request_id}
)
