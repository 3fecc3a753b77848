package services

import "perfume-shop/models"

func demoFragrance(name, slug, description, mythology, colorHex, sku string, price float64, top, heart, base []string) models.Fragrance {
	f := models.NewFragrance()
	f.Name = name
	f.Slug = slug
	f.Description = description
	f.Mythology = &mythology
	f.TopNotes = top
	f.HeartNotes = heart
	f.BaseNotes = base
	f.Price = price
	f.ColorHex = &colorHex
	f.SKU = &sku
	return f
}

func demoFragrances() []models.Fragrance {
	oblivion := demoFragrance("Oblivion (Collector's Edition)", "oblivion",
		"Ink-black iris drowned in abyssal musk and cold stone.",
		"A perfume for crossing the Lethe.",
		"#0B0B0C", "COL-OB-50", 420,
		[]string{"Black Ink Accord", "Elemi"},
		[]string{"Iris", "Licorice"},
		[]string{"Musk", "Slate", "Cedar"},
	)
	variant := "Collector's Edition"
	oblivion.Variant = &variant

	return []models.Fragrance{
		demoFragrance("Wrath", "wrath",
			"A blazing accord of peppered smoke and scorched resin. The heat of battle captured in amber and steel.",
			"Forged in the furnace of Ares, tempered by thunderbolts.",
			"#8B0000", "SIN-WR-50", 295,
			[]string{"Black Pepper", "Charred Citrus"},
			[]string{"Smoked Guaiac", "Incense"},
			[]string{"Amber", "Gunmetal", "Birch Tar"},
		),
		demoFragrance("Envy", "envy",
			"Verdant whispers of emerald ivy and green fig over cold marble.",
			"A serpent's gaze beneath a laurel crown.",
			"#046307", "SIN-EN-50", 285,
			[]string{"Green Fig", "Galbanum"},
			[]string{"Ivy", "Violet Leaf"},
			[]string{"Moss", "Ambroxan"},
		),
		demoFragrance("Sloth", "sloth",
			"A languid veil of chamomile, hay, and worn leather pages.",
			"Dreams drifting through the Library of Hypnos.",
			"#5C4A3F", "SIN-SL-50", 260,
			[]string{"Chamomile", "Bergamot"},
			[]string{"Hay", "Iris"},
			[]string{"Suede", "Tonka"},
		),
		demoFragrance("Lust", "lust",
			"Crimson rose steeped in saffron and skin-warm musk.",
			"A hymn to Aphrodite sung behind velvet curtains.",
			"#7A0A1A", "SIN-LU-50", 310,
			[]string{"Saffron", "Pink Pepper"},
			[]string{"Damask Rose", "Jasmine"},
			[]string{"Musk", "Labdanum", "Sandalwood"},
		),
		demoFragrance("Gluttony", "gluttony",
			"Decadent drips of dark cherry, rum-soaked cake, and molten cacao.",
			"Offerings left at Dionysus' altar.",
			"#3B0B0B", "SIN-GL-50", 295,
			[]string{"Black Cherry", "Boozy Accord"},
			[]string{"Cacao", "Cinnamon"},
			[]string{"Vanilla", "Benzoin"},
		),
		demoFragrance("Pride", "pride",
			"Gilded iris upon burnished leather and polished woods.",
			"A king's fragrance for a mirror-bright throne.",
			"#B8860B", "SIN-PR-50", 320,
			[]string{"Aldehydes", "Cardamom"},
			[]string{"Orris", "Cedar"},
			[]string{"Leather", "Vetiver"},
		),
		demoFragrance("Greed", "greed",
			"Liquid gold: saffron, oud, and a treasury of resins.",
			"Midas' touch bottled.",
			"#C5A047", "SIN-GR-50", 350,
			[]string{"Saffron", "Bitter Orange"},
			[]string{"Rose", "Oud"},
			[]string{"Myrrh", "Patchouli", "Ambergris"},
		),
		oblivion,
	}
}
