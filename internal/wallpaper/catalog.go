package wallpaper

// Entry maps a keyword set to a set of background image URLs.
// The catalog is a process-wide static table; no mutation after init.
type Entry struct {
	Keywords []string
	URLs     []string
}

var catalog = []Entry{
	{
		Keywords: []string{"nature", "forest", "mountain", "landscape", "outdoor", "hiking", "garden", "plant"},
		URLs: []string{
			"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=2560&q=80",
			"https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?w=2560&q=80",
			"https://images.unsplash.com/photo-1426604966848-d7adac402bff?w=2560&q=80",
		},
	},
	{
		Keywords: []string{"ocean", "beach", "sea", "coast", "wave", "surf", "tropical"},
		URLs: []string{
			"https://images.unsplash.com/photo-1505142468610-359e7d316be0?w=2560&q=80",
			"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=2560&q=80",
		},
	},
	{
		Keywords: []string{"city", "urban", "skyline", "street", "architecture", "building", "night"},
		URLs: []string{
			"https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?w=2560&q=80",
			"https://images.unsplash.com/photo-1480714378408-67cf0d13bc1b?w=2560&q=80",
		},
	},
	{
		Keywords: []string{"minimal", "clean", "white", "simple", "calm", "soft", "neutral"},
		URLs: []string{
			"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=2560&q=80",
			"https://images.unsplash.com/photo-1557683316-973673baf926?w=2560&q=80",
			"https://images.unsplash.com/photo-1557682250-33bd709cbe85?w=2560&q=80",
		},
	},
	{
		Keywords: []string{"tech", "code", "computer", "digital", "cyber", "data", "circuit"},
		URLs: []string{
			"https://images.unsplash.com/photo-1518770660439-4636190af475?w=2560&q=80",
			"https://images.unsplash.com/photo-1550751827-4bd374c3f58b?w=2560&q=80",
		},
	},
	{
		Keywords: []string{"art", "paint", "creative", "color", "abstract", "design", "studio"},
		URLs: []string{
			"https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=2560&q=80",
			"https://images.unsplash.com/photo-1513364776144-60967b0f800f?w=2560&q=80",
		},
	},
	{
		Keywords: []string{"food", "bakery", "coffee", "kitchen", "cafe", "restaurant", "cooking", "bread"},
		URLs: []string{
			"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=2560&q=80",
			"https://images.unsplash.com/photo-1509440159596-0249088772ff?w=2560&q=80",
			"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=2560&q=80",
		},
	},
	{
		Keywords: []string{"travel", "map", "adventure", "journey", "road", "explore", "world"},
		URLs: []string{
			"https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=2560&q=80",
			"https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=2560&q=80",
		},
	},
	{
		Keywords: []string{"wedding", "flower", "romantic", "celebration", "elegant", "bloom"},
		URLs: []string{
			"https://images.unsplash.com/photo-1519225421980-715cb0215aed?w=2560&q=80",
			"https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=2560&q=80",
		},
	},
	{
		Keywords: []string{"cozy", "sunset", "golden", "autumn", "light"},
		URLs: []string{
			"https://images.unsplash.com/photo-1470252649378-9c29740c9fa8?w=2560&q=80",
			"https://images.unsplash.com/photo-1472120435266-53107fd0c44a?w=2560&q=80",
		},
	},
}

// genericURLs is the pool used when nothing in the catalog matches.
var genericURLs = []string{
	"https://images.unsplash.com/photo-1557682250-33bd709cbe85?w=2560&q=80",
	"https://images.unsplash.com/photo-1558591710-4b4a1ae0f04d?w=2560&q=80",
	"https://images.unsplash.com/photo-1579546929518-9e396f3cc809?w=2560&q=80",
}
