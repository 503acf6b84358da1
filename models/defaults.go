package models

// DefaultProducts is the catalog seeded into products.json on first start.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Ashwagandha Capsules",
			Description: "Premium quality Ashwagandha root extract capsules for stress relief and vitality enhancement. Made from organically grown herbs.",
			Price:       "₹450",
			Details: NewDetails(
				"Quantity", "60 capsules",
				"Dosage", "2 capsules daily",
				"Category", "Stress Relief",
			),
		},
		{
			ID:          2,
			Name:        "Triphala Powder",
			Description: "Traditional Ayurvedic blend of three fruits for digestive health and detoxification. Pure and natural formulation.",
			Price:       "₹280",
			Details: NewDetails(
				"Quantity", "100g powder",
				"Dosage", "1 tsp twice daily",
				"Category", "Digestive Health",
			),
		},
		{
			ID:          3,
			Name:        "Brahmi Oil",
			Description: "Herbal hair oil enriched with Brahmi extract for hair growth and scalp health. Prevents hair fall and promotes thickness.",
			Price:       "₹320",
			Details: NewDetails(
				"Quantity", "100ml bottle",
				"Usage", "Apply 2-3 times weekly",
				"Category", "Hair Care",
			),
		},
		{
			ID:          4,
			Name:        "Turmeric Tablets",
			Description: "High-curcumin turmeric tablets with black pepper extract for better absorption. Natural anti-inflammatory support.",
			Price:       "₹380",
			Details: NewDetails(
				"Quantity", "90 tablets",
				"Dosage", "1 tablet daily",
				"Category", "Immunity",
			),
		},
		{
			ID:          5,
			Name:        "Neem Capsules",
			Description: "Pure Neem leaf extract capsules for blood purification and skin health. Supports natural detoxification process.",
			Price:       "₹220",
			Details: NewDetails(
				"Quantity", "60 capsules",
				"Dosage", "2 capsules daily",
				"Category", "Blood Purifier",
			),
		},
		{
			ID:          6,
			Name:        "Ayurvedic Tea Blend",
			Description: "Aromatic herbal tea blend with tulsi, ginger, and cardamom. Perfect for daily wellness and digestive support.",
			Price:       "₹180",
			Details: NewDetails(
				"Quantity", "50g loose tea",
				"Usage", "1 cup twice daily",
				"Category", "Wellness Tea",
			),
		},
	}
}

// DefaultProfile is the business record seeded into profile.json on first
// start, and returned whenever the file is missing or unreadable.
func DefaultProfile() Profile {
	return Profile{
		CompanyName:     "Natural Health Clinic",
		DoctorName:      "Dr. Ayurveda",
		Tagline:         "Natural Health Solutions",
		Phone:           "+91 9876543210",
		Email:           "doctor@ayurveda.com",
		Address:         "123 Wellness Street, Nature City, NC 12345",
		AboutParagraph1: "With over 15 years of experience in Ayurvedic medicine, Dr. Ayurveda is dedicated to bringing you the finest natural health products. Our mission is to promote holistic wellness through time-tested Ayurvedic principles and authentic herbal formulations.",
		AboutParagraph2: "Each product in our catalog has been carefully selected and prepared following traditional Ayurvedic methods, ensuring the highest quality and effectiveness for your health journey.",
	}
}
