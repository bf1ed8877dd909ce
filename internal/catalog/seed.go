package catalog

func init() {
	e = buildEngine(seedEngine())
	if err := Validate(); err != nil {
		panic(err)
	}
}

// seedEngine declares the full question catalog. Slice order within each
// category is the presentation order: prerequisite-style questions come
// before the ones that build on them.
func seedEngine() *engine {
	businessBasic := []Question{
		{
			ID:       "success_metrics",
			Prompt:   "How will you measure success?",
			Type:     TypeText,
			Required: true,
			HelpText: "Define specific, measurable success criteria",
		},
		{
			ID:       "timeline",
			Prompt:   "What is your target launch timeline?",
			Type:     TypeChoice,
			Required: true,
			Choices:  []string{"2-4 weeks", "1-3 months", "3-6 months", "6-12 months", "12+ months"},
		},
	}

	businessDetailed := append(append([]Question{}, businessBasic...),
		Question{
			ID:       "business_model",
			Prompt:   "What is your business model?",
			Type:     TypeChoice,
			Required: true,
			Choices:  []string{"Free", "One-time purchase", "Subscription", "Freemium", "Advertising", "Commission", "Other"},
		},
		Question{
			ID:       "revenue_goals",
			Prompt:   "What are your revenue goals for year 1?",
			Type:     TypeText,
			Required: true,
			HelpText: "Provide specific financial targets",
		},
		Question{
			ID:       "competitors",
			Prompt:   "Who are your main competitors?",
			Type:     TypeText,
			Required: true,
			HelpText: "List 3-5 direct or indirect competitors",
		},
		Question{
			ID:       "competitive_advantage",
			Prompt:   "What is your competitive advantage?",
			Type:     TypeText,
			Required: true,
			HelpText: "What makes you different from competitors?",
		},
	)

	return &engine{
		basic: []Question{
			{
				ID:       "project_name",
				Prompt:   "What is the name of your project?",
				Type:     TypeText,
				Required: true,
				HelpText: "Choose a clear, memorable name for your product",
			},
			{
				ID:       "problem_statement",
				Prompt:   "What problem does this product solve?",
				Type:     TypeText,
				Required: true,
				HelpText: "Describe the core problem or pain point your product addresses",
			},
			{
				ID:       "target_audience",
				Prompt:   "Who is your primary target audience?",
				Type:     TypeText,
				Required: true,
				HelpText: "Be specific about demographics, roles, or user characteristics",
			},
			{
				ID:       "value_proposition",
				Prompt:   "What unique value does your product provide?",
				Type:     TypeText,
				Required: true,
				HelpText: "What makes your solution better than alternatives?",
			},
			{
				ID:       "key_features",
				Prompt:   "What are the 3-5 most important features?",
				Type:     TypeText,
				Required: true,
				HelpText: "List the core features that deliver your value proposition",
			},
		},

		businessBasic:    businessBasic,
		businessDetailed: businessDetailed,

		technical: map[ProductType][]Question{
			ProductLandingPage: {
				{
					ID:      "hosting_preference",
					Prompt:  "Do you have a hosting preference?",
					Type:    TypeChoice,
					Choices: []string{"Static hosting (Netlify/Vercel)", "WordPress", "Custom CMS", "No preference"},
				},
				{
					ID:       "design_requirements",
					Prompt:   "Do you have specific design requirements?",
					Type:     TypeText,
					HelpText: "Brand colors, style preferences, existing brand guidelines",
				},
			},
			ProductMobileApp: {
				{
					ID:       "platforms",
					Prompt:   "Which platforms do you want to support?",
					Type:     TypeMultiselect,
					Required: true,
					Choices:  []string{"iOS", "Android", "Both"},
				},
				{
					ID:       "native_vs_cross_platform",
					Prompt:   "Do you prefer native or cross-platform development?",
					Type:     TypeChoice,
					Required: true,
					Choices:  []string{"Native (separate iOS/Android apps)", "Cross-platform (React Native/Flutter)", "No preference"},
				},
				{
					ID:       "offline_functionality",
					Prompt:   "Does the app need to work offline?",
					Type:     TypeConfirm,
					Required: true,
				},
				{
					ID:       "push_notifications",
					Prompt:   "Do you need push notifications?",
					Type:     TypeConfirm,
					Required: true,
				},
				{
					ID:      "device_features",
					Prompt:  "Which device features do you need?",
					Type:    TypeMultiselect,
					Choices: []string{"Camera", "GPS/Location", "Microphone", "Accelerometer", "Biometric auth", "None"},
				},
			},
			ProductWebApp: {
				{
					ID:       "user_authentication",
					Prompt:   "Do you need user accounts and authentication?",
					Type:     TypeConfirm,
					Required: true,
				},
				{
					ID:       "database_requirements",
					Prompt:   "What type of data will you store?",
					Type:     TypeText,
					Required: true,
					HelpText: "User profiles, content, transactions, etc.",
				},
				{
					ID:       "third_party_integrations",
					Prompt:   "Do you need integrations with other services?",
					Type:     TypeText,
					HelpText: "Payment processors, email services, social media, etc.",
				},
				{
					ID:       "expected_users",
					Prompt:   "How many users do you expect?",
					Type:     TypeChoice,
					Required: true,
					Choices:  []string{"<100", "100-1000", "1000-10000", "10000+", "Unknown"},
				},
				{
					ID:       "responsive_design",
					Prompt:   "Does it need to work well on mobile devices?",
					Type:     TypeConfirm,
					Required: true,
					Default:  "yes",
				},
			},
			ProductSaaSPlatform: {
				{
					ID:       "multi_tenancy",
					Prompt:   "Do you need multi-tenant architecture?",
					Type:     TypeConfirm,
					Required: true,
					HelpText: "Multiple customers with isolated data",
				},
				{
					ID:       "subscription_tiers",
					Prompt:   "How many subscription tiers will you offer?",
					Type:     TypeInteger,
					Required: true,
					Default:  "3",
				},
				{
					ID:       "api_requirements",
					Prompt:   "Do you need to provide APIs for customers?",
					Type:     TypeConfirm,
					Required: true,
				},
				{
					ID:       "admin_dashboard",
					Prompt:   "Do you need an admin dashboard?",
					Type:     TypeConfirm,
					Required: true,
					Default:  "yes",
				},
				{
					ID:       "analytics_requirements",
					Prompt:   "What analytics do you need to track?",
					Type:     TypeText,
					Required: true,
					HelpText: "User behavior, feature usage, business metrics",
				},
			},
		},

		userResearch: []Question{
			{
				ID:       "primary_users",
				Prompt:   "Describe your primary user personas",
				Type:     TypeText,
				Required: true,
				HelpText: "Job titles, experience level, goals, pain points",
			},
			{
				ID:       "user_journey",
				Prompt:   "Describe the typical user journey",
				Type:     TypeText,
				Required: true,
				HelpText: "How do users discover, evaluate, and use your product?",
			},
			{
				ID:       "user_research_done",
				Prompt:   "Have you conducted user research?",
				Type:     TypeConfirm,
				Required: true,
			},
			{
				ID:        "user_feedback",
				Prompt:    "What feedback have you received from potential users?",
				Type:      TypeText,
				DependsOn: []Dependency{{QuestionID: "user_research_done", Answer: "yes"}},
			},
		},

		features: map[ProductType][]Question{
			ProductEcommerce: {
				{
					ID:       "payment_methods",
					Prompt:   "What payment methods do you want to support?",
					Type:     TypeMultiselect,
					Required: true,
					Choices:  []string{"Credit/Debit Cards", "PayPal", "Apple Pay", "Google Pay", "Bank Transfer", "Cryptocurrency"},
				},
				{
					ID:       "inventory_management",
					Prompt:   "Do you need inventory management?",
					Type:     TypeConfirm,
					Required: true,
				},
				{
					ID:       "shipping_options",
					Prompt:   "What shipping options will you offer?",
					Type:     TypeText,
					Required: true,
					HelpText: "Standard, express, international, pickup, etc.",
				},
			},
			ProductFintech: {
				{
					ID:       "financial_data_types",
					Prompt:   "What types of financial data will you handle?",
					Type:     TypeMultiselect,
					Required: true,
					Choices:  []string{"Bank accounts", "Transactions", "Investments", "Credit scores", "Insurance", "Taxes"},
				},
				{
					ID:       "regulatory_requirements",
					Prompt:   "Which financial regulations must you comply with?",
					Type:     TypeMultiselect,
					Required: true,
					Choices:  []string{"PCI DSS", "SOX", "KYC", "AML", "GDPR", "CCPA", "Other"},
				},
			},
		},

		compliance: map[IndustryType][]Question{
			IndustryHealthcare: {
				{
					ID:       "hipaa_compliance",
					Prompt:   "Do you need HIPAA compliance?",
					Type:     TypeConfirm,
					Required: true,
					Default:  "yes",
				},
				{
					ID:       "medical_data_types",
					Prompt:   "What types of medical data will you handle?",
					Type:     TypeMultiselect,
					Required: true,
					Choices:  []string{"Patient records", "Lab results", "Imaging", "Prescriptions", "Billing", "None"},
				},
			},
			IndustryFinance: {
				{
					ID:       "financial_regulations",
					Prompt:   "Which financial regulations apply?",
					Type:     TypeMultiselect,
					Required: true,
					Choices:  []string{"SOX", "PCI DSS", "FFIEC", "FINRA", "SEC", "Other"},
				},
				{
					ID:       "audit_requirements",
					Prompt:   "Do you need audit trail capabilities?",
					Type:     TypeConfirm,
					Required: true,
					Default:  "yes",
				},
			},
		},

		projectManagement: []Question{
			{
				ID:       "team_size",
				Prompt:   "How large is your development team?",
				Type:     TypeInteger,
				Required: true,
				HelpText: "Number of developers, designers, etc.",
			},
			{
				ID:       "budget_range",
				Prompt:   "What is your budget range?",
				Type:     TypeChoice,
				Required: true,
				Choices:  []string{"Under $10k", "$10k-$50k", "$50k-$100k", "$100k-$500k", "$500k+", "Prefer not to say"},
			},
			{
				ID:       "existing_systems",
				Prompt:   "Do you have existing systems to integrate with?",
				Type:     TypeText,
				HelpText: "CRM, ERP, databases, APIs, etc.",
			},
			{
				ID:       "maintenance_plan",
				Prompt:   "Who will maintain the system after launch?",
				Type:     TypeChoice,
				Required: true,
				Choices:  []string{"Internal team", "External contractor", "Hybrid approach", "To be determined"},
			},
		},
	}
}
