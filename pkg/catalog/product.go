package catalog

// PlaceholderImageURL is shown for results that carry no image of their own.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?auto=format&w=400&h=400&fit=crop"

// Product is the canonical item shape the whole pipeline works with.
// Instances are built once (by normalization or the mock generator) and the
// list that holds them is replaced wholesale, never patched field by field.
//
// OriginalPrice and Discount travel as a pair: both set when the source
// reported a real discount, both zero otherwise.
type Product struct {
	Id             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	OriginalPrice  float64 `json:"original_price,omitempty"`
	Discount       float64 `json:"discount,omitempty"`
	Image          string  `json:"image"`
	UserTryOnImage string  `json:"user_try_on_image,omitempty"`
	Source         string  `json:"source"`
	Color          string  `json:"color"`
	Size           string  `json:"size"`
	Category       string  `json:"category"`
	InStock        bool    `json:"in_stock"`
	Description    string  `json:"description,omitempty"`
}
