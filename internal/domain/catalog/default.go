// Package catalog holds the built-in reference data of the quote builder.
package catalog

import "webquote/internal/domain/entities"

// commonCMSPlugins are required by every template CMS build.
var commonCMSPlugins = []entities.Plugin{
	{ID: "elementor-pro", Name: "Elementor Pro license", Price: 4.5, Description: "Includes a custom theme build", Mandatory: true},
	{ID: "wp-rocket", Name: "Speed configuration (WP Rocket)", Price: 3.0, Description: "Database optimisation and advanced caching", Mandatory: true},
	{ID: "security-pro", Name: "Security configuration", Price: 4.0, Description: "Firewall, hardening and monitoring", Mandatory: true},
	{ID: "seo-pro", Name: "Technical SEO (RankMath setup)", Price: 5.5, Description: "Schema, sitemap and search console setup", Mandatory: true},
}

func withCommon(extra ...entities.Plugin) []entities.Plugin {
	out := make([]entities.Plugin, 0, len(commonCMSPlugins)+len(extra))
	out = append(out, commonCMSPlugins...)
	return append(out, extra...)
}

// Default returns a fresh copy of the built-in catalog.
func Default() entities.Catalog {
	return entities.Catalog{
		Categories: map[entities.Category]entities.CategoryProfile{
			entities.CategoryNews: {
				Label:         "News / magazine site",
				Multiplier:    1.3,
				AddedDuration: 5,
				Hosting: entities.HostingProfile{
					Type:    "Dedicated virtual server (VPS)",
					Storage: "40 GB NVMe",
					RAM:     "8 GB dedicated RAM",
					Price:   5.8,
					Reason:  "News sites see bursty live traffic and need dedicated resources to stay responsive.",
				},
			},
			entities.CategoryECommerce: {
				Label:         "Online store",
				Multiplier:    2.0,
				AddedDuration: 10,
				Hosting: entities.HostingProfile{
					Type:    "Cloud hosting tuned for e-commerce",
					Storage: "50 GB NVMe",
					RAM:     "12 GB dedicated RAM",
					Price:   8.5,
					Reason:  "Carts, payment gateways and large product catalogs need the strongest infrastructure.",
				},
			},
			entities.CategoryBlog: {
				Label:         "Personal blog / branding",
				Multiplier:    1.0,
				AddedDuration: 2,
				Hosting: entities.HostingProfile{
					Type:    "Fast Linux hosting",
					Storage: "5 GB SSD",
					RAM:     "2 GB",
					Price:   2.5,
					Reason:  "Standard fast hosting is enough to serve articles and images quickly.",
				},
			},
			entities.CategoryCorporate: {
				Label:         "Corporate / services",
				Multiplier:    1.5,
				AddedDuration: 4,
				Hosting: entities.HostingProfile{
					Type:    "Business cloud hosting",
					Storage: "10 GB NVMe",
					RAM:     "4 GB",
					Price:   3.8,
					Reason:  "Business hosting prioritises stability and corporate mail security.",
				},
			},
			entities.CategoryPortfolio: {
				Label:         "Resume / portfolio",
				Multiplier:    1.1,
				AddedDuration: 3,
				Hosting: entities.HostingProfile{
					Type:    "Optimised economy hosting",
					Storage: "2 GB",
					RAM:     "1 GB",
					Price:   1.5,
					Reason:  "Room for high quality portfolio images at a low cost.",
				},
			},
		},
		Stacks: map[entities.Stack]entities.StackProfile{
			entities.StackTemplateCMS: {
				Label:        "Custom WordPress build",
				Description:  "Professional build tuned for speed and security, suited to standard businesses.",
				BasePrice:    15,
				BaseDuration: 10,
			},
			entities.StackCustomCode: {
				Label:        "Custom code (Next.js)",
				Description:  "Modern architecture with enterprise-grade performance and security for large projects.",
				BasePrice:    65,
				BaseDuration: 30,
			},
		},
		Extras: map[entities.ExtraKey]entities.ExtraProfile{
			entities.ExtraDesign:       {Label: "Custom UI/UX design (Figma)", ItemName: "Design", Description: "Full design and prototype before implementation", Price: 25, Duration: 7},
			entities.ExtraMultilingual: {Label: "Multilingual infrastructure", ItemName: "Multilingual", Description: "Translated structure with LTR/RTL layouts", Price: 12, Duration: 3},
			entities.ExtraContent:      {Label: "Content strategy and entry", ItemName: "Content", Description: "20 SEO-ready articles entered and structured", Price: 8, Duration: 4},
			entities.ExtraStorage:      {Label: "Media download server (100 GB)", ItemName: "Storage", Description: "Isolated space for video and podcasts", Price: 4.5, Duration: 1},
		},
		Plugins: map[entities.Category][]entities.Plugin{
			entities.CategoryECommerce: withCommon(
				entities.Plugin{ID: "woodmart-theme", Name: "Original store theme", Price: 3.5, Description: "License purchase and full customisation", Mandatory: true},
				entities.Plugin{ID: "woo-core", Name: "WooCommerce setup", Price: 0.0, Description: "Tax, currency and inventory settings", Mandatory: true},
				entities.Plugin{ID: "payment-gateway", Name: "Bank gateway integration", Price: 1.5, Description: "Merchant verification and transaction testing", Mandatory: true},
				entities.Plugin{ID: "shipping-pro", Name: "Advanced shipping", Price: 2.5, Description: "Carrier and courier integrations"},
				entities.Plugin{ID: "torob-api", Name: "Marketplace feeds", Price: 2.0, Description: "Automatic product feeds for price comparison sites"},
				entities.Plugin{ID: "sms-panel", Name: "SMS notifications", Price: 1.8, Description: "Transactional SMS templates"},
			),
			entities.CategoryNews: withCommon(
				entities.Plugin{ID: "jannah-theme", Name: "Advanced news theme", Price: 3.0, Description: "Professional news block layouts", Mandatory: true},
				entities.Plugin{ID: "auto-post", Name: "News scraper bot", Price: 4.5, Description: "Collects news from configured sources"},
				entities.Plugin{ID: "ad-manager", Name: "Ad management", Price: 2.0, Description: "Banner slots and click-based ads"},
				entities.Plugin{ID: "amp-pro", Name: "Mobile version (Google AMP)", Price: 2.5, Description: "Instant loading in mobile search results"},
			),
			entities.CategoryCorporate: withCommon(
				entities.Plugin{ID: "corporate-theme", Name: "Premium corporate theme", Price: 2.5, Description: "Formal design in brand colours", Mandatory: true},
				entities.Plugin{ID: "gravity-forms", Name: "Advanced form builder (Gravity)", Price: 2.5, Description: "Recruitment and complex order forms", Mandatory: true},
				entities.Plugin{ID: "live-chat", Name: "Live support", Price: 1.5, Description: "CRM connection and live answers"},
				entities.Plugin{ID: "portfolio-addon", Name: "Projects module", Price: 1.5, Description: "Professional showcase of past work"},
			),
			entities.CategoryPortfolio: withCommon(
				entities.Plugin{ID: "portfolio-theme", Name: "Portfolio theme", Price: 2.0, Description: "Focused on visual presentation", Mandatory: true},
				entities.Plugin{ID: "gallery-pro", Name: "Gallery and lightbox pro", Price: 1.8, Description: "Filtering and high quality display", Mandatory: true},
				entities.Plugin{ID: "download-manager", Name: "Digital file sales", Price: 1.5, Description: "Sell designs and files"},
			),
			entities.CategoryBlog: withCommon(
				entities.Plugin{ID: "blog-theme", Name: "Standard blog theme", Price: 2.0, Description: "Readable typography and minimal layout", Mandatory: true},
				entities.Plugin{ID: "table-contents", Name: "Reading experience", Price: 1.0, Description: "Automatic table of contents and reading time", Mandatory: true},
				entities.Plugin{ID: "newsletter", Name: "Email marketing", Price: 2.5, Description: "Lead capture and newsletters"},
			),
		},
		Automations: []entities.AutomationOption{
			{ID: "social-sync", Title: "Social media automation", Price: 7.5, Description: "Automatic publishing and scheduling across social networks."},
			{ID: "ai-writer", Title: "AI content pipeline", Price: 14.0, Description: "Article generation pipeline with SEO-aware auto publishing."},
			{ID: "crm-sync", Title: "CRM integration", Price: 9.5, Description: "Two-way sync between the site and the CRM."},
			{ID: "ai-chatbot", Title: "Smart chatbot (RAG)", Price: 22.0, Description: "Assistant trained on company documents."},
		},
		ContentServices: []entities.ContentServiceOption{
			{ID: "brand-identity", Title: "Branding and logo (premium)", Price: 18.0, Description: "Logo, typography, palette and brand book."},
			{ID: "promo-video", Title: "Promo video and motion", Price: 15.0, Description: "Script, production and editing of a service teaser (up to 90s)."},
			{ID: "voice-over", Title: "Studio narration", Price: 5.0, Description: "Professional voice recording for videos and welcome messages."},
			{ID: "ai-visuals", Title: "Graphics and banner pack", Price: 7.0, Description: "Full set of site banners and sliders."},
		},
		SupportPackages: []entities.SupportPackage{
			{
				ID:    "basic",
				Title: "Silver support",
				Price: 12.0,
				Features: []string{
					"Monthly core and plugin updates",
					"Ticket replies within 24 hours",
					"Uptime and security monitoring",
					"Term: 1 year",
				},
			},
			{
				ID:          "pro",
				Title:       "Gold support",
				Price:       28.0,
				Recommended: true,
				Features: []string{
					"Everything in Silver",
					"Daily off-site backups",
					"Weekly security scan and cleanup",
					"Phone and messenger support",
					"5 hours of technical or design changes per month",
				},
			},
			{
				ID:    "vip",
				Title: "Diamond support (VIP)",
				Price: 65.0,
				Features: []string{
					"Dedicated support engineer",
					"Real-time monitoring",
					"Continuous Core Web Vitals tuning",
					"24/7 emergency support",
					"Content and product management",
					"Monthly strategy sessions",
				},
			},
		},
	}
}
