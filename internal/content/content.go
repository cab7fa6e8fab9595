// Package content holds the static landing page copy.
package content

// Hero is the page header
type Hero struct {
	Headline string
	Tagline  string
	Actions  []string
}

// Service is one entry of the services section
type Service struct {
	Title       string
	Description string
}

// Plan is one pricing tier
type Plan struct {
	Name        string
	Price       string
	Description string
	Features    []string
	CTA         string
	Popular     bool
}

// Section headings and intros
const (
	ServicesTitle  = "Our Services"
	ServicesIntro  = "We offer a comprehensive suite of services designed to help your business thrive in the digital age."
	PricingTitle   = "Pricing Plans"
	PricingIntro   = "Choose the perfect plan for your business needs. All plans include a 14-day free trial."
	DirectoryTitle = "Our Users"
	DirectoryIntro = "Search and explore our user database with our fast, debounced search functionality."
)

// LandingHero is shown at the top of every page
var LandingHero = Hero{
	Headline: "Transform Your Business with Our Innovative Solutions",
	Tagline:  "We help businesses grow by providing cutting-edge technology solutions that drive results and create meaningful experiences.",
	Actions:  []string{"Get Started", "Learn More"},
}

// Services lists the offered services in display order
var Services = []Service{
	{
		Title:       "Lightning Fast Performance",
		Description: "Our solutions are optimized for speed, ensuring your users have a seamless experience.",
	},
	{
		Title:       "Data-Driven Insights",
		Description: "Make informed decisions with our advanced analytics and reporting tools.",
	},
	{
		Title:       "Scalable Architecture",
		Description: "Built to grow with your business, our platform scales effortlessly as your needs evolve.",
	},
	{
		Title:       "Enterprise Security",
		Description: "Rest easy knowing your data is protected with industry-leading security measures.",
	},
}

// Plans lists the pricing tiers from cheapest to most expensive
var Plans = []Plan{
	{
		Name:        "Basic",
		Price:       "$29",
		Description: "Perfect for small businesses and startups",
		Features:    []string{"Up to 5 users", "10GB storage", "Basic analytics", "24/7 support"},
		CTA:         "Get Started",
	},
	{
		Name:        "Pro",
		Price:       "$79",
		Description: "Ideal for growing businesses and teams",
		Features:    []string{"Up to 20 users", "50GB storage", "Advanced analytics", "Priority support", "Custom integrations"},
		CTA:         "Get Started",
		Popular:     true,
	},
	{
		Name:        "Enterprise",
		Price:       "$199",
		Description: "For large organizations with complex needs",
		Features: []string{
			"Unlimited users",
			"500GB storage",
			"Premium analytics",
			"Dedicated support team",
			"Custom integrations",
			"Advanced security features",
		},
		CTA: "Contact Sales",
	},
}
