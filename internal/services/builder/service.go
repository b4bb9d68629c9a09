package builder

import (
	"time"

	"go.uber.org/zap"

	"aihustle/internal/domain"
	"aihustle/internal/logging"
)

// ErrProductNotFound is the value-level error of a CreateProduct miss.
const ErrProductNotFound = "Product type not found"

// Service holds the product templates in insertion order.
type Service struct {
	products []domain.Product
	now      func() time.Time
	create   func(domain.ProductType) domain.ProductResult
}

// New returns a builder whose CreateProduct calls are logged under the
// operation category.
func New(log *zap.Logger) *Service {
	s := &Service{products: productTemplates(), now: time.Now}
	s.create = logging.Operation(log, "create_product", s.createProduct)
	return s
}

// CreateProduct instantiates the first template of the given type. An
// unknown type yields a result whose Error is ErrProductNotFound.
func (s *Service) CreateProduct(productType domain.ProductType) domain.ProductResult {
	return s.create(productType)
}

func (s *Service) createProduct(productType domain.ProductType) domain.ProductResult {
	for _, p := range s.products {
		if p.Type != productType {
			continue
		}
		p = p.Clone()
		return domain.ProductResult{
			Status:          "created",
			Timestamp:       domain.Timestamp(s.now()),
			Product:         &p,
			MobileOptimized: true,
		}
	}
	return domain.ProductResult{Error: ErrProductNotFound}
}

// GetTemplates returns the landing-page and email-sequence template names.
func (s *Service) GetTemplates() domain.Templates {
	return domain.Templates{
		LandingPages:   []string{"AI Tool", "Course", "Service"},
		EmailSequences: []string{"Welcome Series", "Product Launch", "Abandoned Cart"},
	}
}

// Products returns a copy of the product templates.
func (s *Service) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

func productTemplates() []domain.Product {
	return []domain.Product{
		{
			Type:  "prompt_kit",
			Name:  "AI Content Repurposing Kit",
			Price: 47.00,
			Components: []string{
				"50+ AI prompts",
				"Platform-specific templates",
				"Video guide",
			},
			Delivery: "Instant download",
		},
	}
}

var _ domain.BuilderService = (*Service)(nil)
