package domain

// Service is a repair offering of the shop.
// Price is non-negative and Duration is in minutes; both are enforced by callers.
type Service struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	Duration    int     `json:"duration" yaml:"duration"`
	Image       string  `json:"image" yaml:"image"`
}
