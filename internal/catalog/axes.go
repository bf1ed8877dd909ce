package catalog

import "fmt"

// ProductType classifies the kind of product being specified.
type ProductType string

const (
	ProductLandingPage        ProductType = "landing_page"
	ProductMobileApp          ProductType = "mobile_app"
	ProductWebApp             ProductType = "web_app"
	ProductDesktopApp         ProductType = "desktop_app"
	ProductSaaSPlatform       ProductType = "saas_platform"
	ProductEnterpriseSoftware ProductType = "enterprise_software"
	ProductEcommerce          ProductType = "ecommerce"
	ProductFintech            ProductType = "fintech"
	ProductHealthtech         ProductType = "healthtech"
	ProductFullBusiness       ProductType = "full_business"
)

// AllProductTypes returns all product types in display order.
func AllProductTypes() []ProductType {
	return []ProductType{
		ProductLandingPage,
		ProductMobileApp,
		ProductWebApp,
		ProductDesktopApp,
		ProductSaaSPlatform,
		ProductEnterpriseSoftware,
		ProductEcommerce,
		ProductFintech,
		ProductHealthtech,
		ProductFullBusiness,
	}
}

// ProductDisplayName returns a human-readable name for a product type.
func ProductDisplayName(p ProductType) string {
	switch p {
	case ProductLandingPage:
		return "Landing Page"
	case ProductMobileApp:
		return "Mobile App"
	case ProductWebApp:
		return "Web App"
	case ProductDesktopApp:
		return "Desktop App"
	case ProductSaaSPlatform:
		return "SaaS Platform"
	case ProductEnterpriseSoftware:
		return "Enterprise Software"
	case ProductEcommerce:
		return "E-commerce"
	case ProductFintech:
		return "Fintech"
	case ProductHealthtech:
		return "Healthtech"
	case ProductFullBusiness:
		return "Full Business"
	default:
		return string(p)
	}
}

// ParseProductType converts a stored string to a ProductType.
func ParseProductType(s string) (ProductType, error) {
	for _, p := range AllProductTypes() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown product type: %q", s)
}

// IndustryType classifies the industry the product serves.
// IndustryGeneral is the neutral value: no industry-specific
// compliance questions are asked for it.
type IndustryType string

const (
	IndustryGeneral       IndustryType = "general"
	IndustryFinance       IndustryType = "finance"
	IndustryHealthcare    IndustryType = "healthcare"
	IndustryEducation     IndustryType = "education"
	IndustryRetail        IndustryType = "retail"
	IndustryManufacturing IndustryType = "manufacturing"
	IndustryEntertainment IndustryType = "entertainment"
	IndustryLogistics     IndustryType = "logistics"
	IndustryRealEstate    IndustryType = "real_estate"
	IndustryGovernment    IndustryType = "government"
)

// AllIndustryTypes returns all industry types in display order.
func AllIndustryTypes() []IndustryType {
	return []IndustryType{
		IndustryGeneral,
		IndustryFinance,
		IndustryHealthcare,
		IndustryEducation,
		IndustryRetail,
		IndustryManufacturing,
		IndustryEntertainment,
		IndustryLogistics,
		IndustryRealEstate,
		IndustryGovernment,
	}
}

// IndustryDisplayName returns a human-readable name for an industry.
func IndustryDisplayName(i IndustryType) string {
	switch i {
	case IndustryGeneral:
		return "General"
	case IndustryFinance:
		return "Finance"
	case IndustryHealthcare:
		return "Healthcare"
	case IndustryEducation:
		return "Education"
	case IndustryRetail:
		return "Retail"
	case IndustryManufacturing:
		return "Manufacturing"
	case IndustryEntertainment:
		return "Entertainment"
	case IndustryLogistics:
		return "Logistics"
	case IndustryRealEstate:
		return "Real Estate"
	case IndustryGovernment:
		return "Government"
	default:
		return string(i)
	}
}

// ParseIndustryType converts a stored string to an IndustryType.
func ParseIndustryType(s string) (IndustryType, error) {
	for _, i := range AllIndustryTypes() {
		if string(i) == s {
			return i, nil
		}
	}
	return "", fmt.Errorf("unknown industry type: %q", s)
}

// ComplexityLevel is the ordered project complexity tier.
type ComplexityLevel string

const (
	ComplexitySimple     ComplexityLevel = "simple"     // 1-2 weeks, < 5 features
	ComplexityModerate   ComplexityLevel = "moderate"   // 2-8 weeks, 5-15 features
	ComplexityComplex    ComplexityLevel = "complex"    // 2-6 months, 15-50 features
	ComplexityEnterprise ComplexityLevel = "enterprise" // 6+ months, 50+ features
)

// AllComplexityLevels returns all complexity levels from simplest to most complex.
func AllComplexityLevels() []ComplexityLevel {
	return []ComplexityLevel{
		ComplexitySimple,
		ComplexityModerate,
		ComplexityComplex,
		ComplexityEnterprise,
	}
}

// ComplexityDisplayName returns a human-readable name for a complexity level.
func ComplexityDisplayName(c ComplexityLevel) string {
	switch c {
	case ComplexitySimple:
		return "Simple (1-2 weeks, < 5 features)"
	case ComplexityModerate:
		return "Moderate (2-8 weeks, 5-15 features)"
	case ComplexityComplex:
		return "Complex (2-6 months, 15-50 features)"
	case ComplexityEnterprise:
		return "Enterprise (6+ months, 50+ features)"
	default:
		return string(c)
	}
}

// ParseComplexityLevel converts a stored string to a ComplexityLevel.
func ParseComplexityLevel(s string) (ComplexityLevel, error) {
	for _, c := range AllComplexityLevels() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown complexity level: %q", s)
}

// IsDetailed reports whether this complexity tier gets the detailed
// business and project-management question sets.
func (c ComplexityLevel) IsDetailed() bool {
	return c == ComplexityComplex || c == ComplexityEnterprise
}
